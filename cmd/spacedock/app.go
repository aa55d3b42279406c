package main

import (
	"errors"
	"fmt"

	"spacedock"
	"spacedock/spacetraders"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// defaultWaypoint is looked up when spacedock runs without a subcommand.
const defaultWaypoint = "X1-DF55-20250Z"

// app is the state shared by every command of one invocation.
type app struct {
	envFile  string
	logLevel string

	settings spacedock.Settings
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "spacedock",
		Short: "Query the SpaceTraders API as your agent",
		Long: `spacedock talks to the SpaceTraders API on behalf of your agent.

Without a subcommand it prints your agent and the ` + defaultWaypoint + ` waypoint.
The auth token is read from the config file written at registration, falling
back to SPACETRADERS_TOKEN or the token file.`,
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runDefault,
	}

	rootCmd.PersistentFlags().StringVar(&a.envFile, "env", ".env", "settings file in env format")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides LOG_LEVEL)")

	rootCmd.AddCommand(a.agentCmd())
	rootCmd.AddCommand(a.waypointCmd())
	rootCmd.AddCommand(a.registerCmd())
	rootCmd.AddCommand(factionsCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	settings, err := spacedock.LoadSettings(a.envFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		settings.LogLevel = a.logLevel
	}

	logger, err := spacedock.NewLogger(settings.LogLevel)
	if err != nil {
		return err
	}

	a.settings = settings
	a.logger = logger
	return nil
}

func (a *app) clientOptions() []spacetraders.Option {
	return []spacetraders.Option{
		spacetraders.WithBaseURL(a.settings.BaseURL),
		spacetraders.WithConfigPath(a.settings.ConfigPath),
		spacetraders.WithLogger(a.logger),
	}
}

// client uses the saved token when there is one and the bootstrap token
// otherwise.
func (a *app) client() (*spacetraders.Client, error) {
	c, err := spacetraders.NewClientFromConfig(a.clientOptions()...)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, spacetraders.MissingTokenError) {
		return nil, err
	}

	a.logger.Debug("no saved token, using bootstrap token", zap.String("config", a.settings.ConfigPath))

	token, err := spacedock.BootstrapToken(a.settings)
	if err != nil {
		return nil, fmt.Errorf("no saved token and no bootstrap token, run \"spacedock register\" first: %w", err)
	}

	return spacetraders.NewClientFromToken(token, a.clientOptions()...)
}

func (a *app) runDefault(cmd *cobra.Command, args []string) error {
	c, err := a.client()
	if err != nil {
		return err
	}

	agent, err := c.GetAgentData(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Agent:")
	fmt.Fprintln(cmd.OutOrStdout(), agent)

	location, err := c.GetWaypointLocation(cmd.Context(), defaultWaypoint)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Location:")
	fmt.Fprintln(cmd.OutOrStdout(), location)

	return nil
}
