// Package viz provides terminal-based visualization for solver runs.
//
// Stored snapshots are rendered with asciigraph; the live view is an
// interactive Bubble Tea program animating the advecting profile.
//
// # Key Bindings (live view)
//
//	Space - Pause/Resume
//	R     - Reset to the initial profile
//	Tab   - Toggle flux scheme
//	Up/Dn - Scale advection speed
//	Lt/Rt - Adjust Courant number
//	Q     - Quit
package viz
