package main

import (
	"errors"
	"fmt"
	"strings"

	"spacedock/spacetraders"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) registerCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "register <SYMBOL> <FACTION>",
		Short: "Register a new agent and save its token",
		Long: `Register a new agent with the given callsign and starting faction.

The new token is saved to the config file so later commands use it.
Factions: ` + factionList(),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			faction, err := spacetraders.ParseFaction(args[1])
			if err != nil {
				return err
			}

			c, err := spacetraders.NewClientWithRegistration(cmd.Context(), args[0], faction, a.clientOptions()...)

			var persistErr *spacetraders.TokenPersistError
			if errors.As(err, &persistErr) {
				a.logger.Warn("token was not saved, keep it somewhere safe",
					zap.String("token", persistErr.Token),
					zap.String("config", a.settings.ConfigPath),
				)
				fmt.Fprintln(cmd.OutOrStdout(), persistErr.Token)
				return err
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s, token saved to %s\n", args[0], a.settings.ConfigPath)
			if showAll {
				agent, err := c.GetAgentData(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), agent)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAll, "show-agent", false, "print the new agent after registering")

	return cmd
}

func factionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factions",
		Short: "List the factions an agent can start in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range spacetraders.Factions() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}

func factionList() string {
	names := []string{}
	for _, f := range spacetraders.Factions() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
