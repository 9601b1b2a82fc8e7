// Package waypoint binds a resolution-independent list of normalized
// waypoints to concrete grid positions once a map's dimensions are known.
package waypoint
