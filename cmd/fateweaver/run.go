package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/health"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to Discord and serve interactions",
	RunE:  runBot,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slog.Info("starting fateweaver",
		"version", version,
		"environment", cfg.Environment,
		"api_url", cfg.APIURL,
	)

	b := bot.NewBot(cfg, newRegistry(cfg))
	if err := b.LoadModules(); err != nil {
		return fmt.Errorf("failed to load modules: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return health.NewServer(cfg.HealthPort).Run(ctx)
	})

	g.Go(func() error {
		if err := b.Start(); err != nil {
			return fmt.Errorf("failed to start bot: %w", err)
		}

		<-ctx.Done()
		slog.Info("received termination signal, shutting down")
		if err := b.Stop(); err != nil {
			return fmt.Errorf("failed to shutdown: %w", err)
		}
		slog.Info("completed bot shutdown")
		return nil
	})

	return g.Wait()
}
