package main

import (
	"fmt"

	"spacedock/spacetraders"

	"github.com/spf13/cobra"
)

func (a *app) waypointCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "waypoint <SECTOR-SYSTEM-WAYPOINT>",
		Short:   "Print the location data of a waypoint",
		Example: `  spacedock waypoint X1-DF55-20250Z`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := spacetraders.SystemFromWaypoint(args[0]); err != nil {
				return err
			}

			c, err := a.client()
			if err != nil {
				return err
			}

			location, err := c.GetWaypointLocation(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), location)
			return nil
		},
	}
}
