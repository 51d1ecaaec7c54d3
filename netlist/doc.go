// Package netlist reads the plain-text board description consumed by the
// router: grid size, penalties, obstacles and nets.
//
// Format:
//
//	14,14,1,0                 width,height,bendPenalty,viaPenalty
//	OBS (0, 8, 1)             obstacle at (layer,x,y)
//	net1 (0,5,5) (0,11,3)     net name followed by its pins in order
//	# comment                 blank lines and '#' comments are skipped
//
// Obstacle coordinates are not range-checked here; off-grid obstacles are
// dropped when the grid is built. Nets with fewer than two pins are kept so
// the router can report them.
package netlist
