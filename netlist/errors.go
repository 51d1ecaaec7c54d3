package netlist

import (
	"errors"
	"fmt"
)

var (
	// ErrHeader indicates a missing or malformed "w,h,bend,via" first line.
	ErrHeader = errors.New("netlist: header must be width,height,bendPenalty,viaPenalty")
	// ErrObstacle indicates an OBS line without exactly one (layer,x,y) tuple.
	ErrObstacle = errors.New("netlist: obstacle needs exactly one (layer,x,y)")
	// ErrNetName indicates a net line that does not start with a name.
	ErrNetName = errors.New("netlist: net line must start with a name")
	// ErrCoordinate indicates a tuple number too large for an int.
	ErrCoordinate = errors.New("netlist: coordinate out of range")
	// ErrDuplicateNet indicates a net name defined twice.
	ErrDuplicateNet = errors.New("netlist: duplicate net name")
)

// LineError reports the input line that could not be parsed.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("netlist: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
