package main

import (
	"fmt"
	"log/slog"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/commandsync"
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dryRun bool

var deployCmd = &cobra.Command{
	Use:   "deploy-commands",
	Short: "Deploy the slash commands that changed",
	Long: `Compares the local slash commands with the deployed ones and only
creates, updates or deletes what differs. Commands are deployed to
DISCORD_GUILD_ID when it is set, globally otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, session, err := discordClient()
		if err != nil {
			return err
		}

		plan, err := commandsync.Diff(session, cfg.ClientID, cfg.GuildID, newRegistry(cfg).Commands())
		if err != nil {
			return err
		}

		if dryRun {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(plan.Summary())
		}

		slog.Info("planned command deployment",
			"scope", scope(cfg.GuildID),
			"create", len(plan.Create),
			"update", len(plan.Update),
			"delete", len(plan.Delete),
			"unchanged", len(plan.Unchanged),
		)
		if plan.Changes() == 0 {
			slog.Info("no command changes to deploy")
			return nil
		}
		return commandsync.Apply(session, cfg.ClientID, cfg.GuildID, plan)
	},
}

var deployForceCmd = &cobra.Command{
	Use:   "deploy-commands-force",
	Short: "Delete every slash command, then deploy them all",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, session, err := discordClient()
		if err != nil {
			return err
		}

		slog.Warn("force deploying commands", "scope", scope(cfg.GuildID))
		_, err = commandsync.ForceDeploy(session, cfg.ClientID, cfg.GuildID, newRegistry(cfg).Commands())
		return err
	},
}

func init() {
	deployCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the deployment plan as YAML without applying it")
	rootCmd.AddCommand(deployCmd, deployForceCmd)
}

// discordClient loads the configuration and opens a REST-only Discord session.
func discordClient() (*bot.Config, *discordgo.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.RequireCredentials(); err != nil {
		return nil, nil, err
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	return cfg, session, nil
}

func scope(guildID string) string {
	if guildID == "" {
		return "global"
	}
	return "guild:" + guildID
}
