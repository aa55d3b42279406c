package spacetraders

import (
	"fmt"
	"strings"
)

// SystemFromWaypoint returns the system part of a waypoint symbol. Waypoints
// look like SECTOR-SYSTEM-WAYPOINT, so "X1-DF55-20250Z" is in system
// "X1-DF55". Only the first two segments are used.
func SystemFromWaypoint(waypoint string) (string, error) {
	segments := strings.Split(waypoint, "-")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return "", fmt.Errorf("%w: %q", InvalidWaypointError, waypoint)
	}

	return segments[0] + "-" + segments[1], nil
}
