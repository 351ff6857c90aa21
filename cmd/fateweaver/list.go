package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Output formats of list-commands.
const (
	outputTable = "table"
	outputYAML  = "yaml"
	outputJSON  = "json"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:   "list-commands",
	Short: "List the deployed slash commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutput(listOutput); err != nil {
			return err
		}

		cfg, session, err := discordClient()
		if err != nil {
			return err
		}

		var global, guild []*discordgo.ApplicationCommand
		g := errgroup.Group{}
		g.Go(func() error {
			var err error
			global, err = session.ApplicationCommands(cfg.ClientID, "")
			if err != nil {
				return fmt.Errorf("failed to list global commands: %w", err)
			}
			return nil
		})
		if cfg.GuildID != "" {
			g.Go(func() error {
				var err error
				guild, err = session.ApplicationCommands(cfg.ClientID, cfg.GuildID)
				if err != nil {
					return fmt.Errorf("failed to list guild commands: %w", err)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		listed := listedCommands("global", global)
		listed = append(listed, listedCommands(scope(cfg.GuildID), guild)...)
		return writeCommands(cmd.OutOrStdout(), listOutput, listed)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", outputTable, "output format: table, yaml or json")
	rootCmd.AddCommand(listCmd)
}

type listedCommand struct {
	Scope       string `yaml:"scope" json:"scope"`
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

func listedCommands(scope string, cmds []*discordgo.ApplicationCommand) []listedCommand {
	listed := make([]listedCommand, 0, len(cmds))
	for _, c := range cmds {
		listed = append(listed, listedCommand{
			Scope:       scope,
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		})
	}
	return listed
}

func checkOutput(format string) error {
	switch format {
	case outputTable, outputYAML, outputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeCommands(w io.Writer, format string, cmds []listedCommand) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(cmds)
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cmds)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCOPE\tID\tNAME\tDESCRIPTION")
	for _, c := range cmds {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Scope, c.ID, c.Name, c.Description)
	}
	return tw.Flush()
}
