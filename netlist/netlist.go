package netlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/leeroute/grid"
	"github.com/katalvlaran/leeroute/netroute"
)

// Design is a parsed board description.
type Design struct {
	Width, Height int
	BendPenalty   float64
	ViaPenalty    float64
	Obstacles     []grid.Cell
	Nets          []netroute.Net // file order
}

var tupleRE = regexp.MustCompile(`\(\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*\)`)

// Parse reads a Design from r.
func Parse(r io.Reader) (*Design, error) {
	sc := bufio.NewScanner(r)
	var (
		d      *Design
		lineNo int
		seen   = make(map[string]bool)
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if d == nil {
			h, err := parseHeader(line)
			if err != nil {
				return nil, &LineError{Line: lineNo, Text: line, Err: err}
			}
			d = h
			continue
		}

		if strings.HasPrefix(strings.ToUpper(line), "OBS") {
			cells, err := parseTuples(line)
			if err != nil {
				return nil, &LineError{Line: lineNo, Text: line, Err: err}
			}
			if len(cells) != 1 {
				return nil, &LineError{Line: lineNo, Text: line, Err: ErrObstacle}
			}
			d.Obstacles = append(d.Obstacles, cells[0])
			continue
		}

		name := netName(line)
		if name == "" {
			return nil, &LineError{Line: lineNo, Text: line, Err: ErrNetName}
		}
		if seen[name] {
			return nil, &LineError{Line: lineNo, Text: line, Err: ErrDuplicateNet}
		}
		pins, err := parseTuples(line)
		if err != nil {
			return nil, &LineError{Line: lineNo, Text: line, Err: err}
		}
		seen[name] = true
		d.Nets = append(d.Nets, netroute.Net{Name: name, Pins: pins})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("netlist: read: %w", err)
	}
	if d == nil {
		return nil, ErrHeader
	}

	return d, nil
}

// ParseFile reads a Design from the named file.
func ParseFile(path string) (*Design, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netlist: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Grid builds a grid of the design's size with its obstacles marked.
func (d *Design) Grid() (*grid.Grid, error) {
	g, err := grid.New(d.Width, d.Height)
	if err != nil {
		return nil, err
	}
	for _, c := range d.Obstacles {
		g.MarkObstacle(c.Layer, c.X, c.Y)
	}

	return g, nil
}

func parseHeader(line string) (*Design, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: got %d fields", ErrHeader, len(parts))
	}
	w, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	bend, err3 := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	via, err4 := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	for _, err := range []error{err1, err2, err3, err4} {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrHeader, err)
		}
	}

	return &Design{Width: w, Height: h, BendPenalty: bend, ViaPenalty: via}, nil
}

// parseTuples returns every (layer,x,y) tuple on the line, in order.
// Returns ErrCoordinate when a number does not fit in an int.
func parseTuples(line string) ([]grid.Cell, error) {
	var cells []grid.Cell
	for _, m := range tupleRE.FindAllStringSubmatch(line, -1) {
		var v [3]int
		for i := range v {
			n, err := strconv.Atoi(m[i+1])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCoordinate, err)
			}
			v[i] = n
		}
		cells = append(cells, grid.At(grid.Layer(v[0]), v[1], v[2]))
	}
	return cells, nil
}

// netName is the text before the first blank or '('.
func netName(line string) string {
	end := strings.IndexAny(line, " \t(")
	if end < 0 {
		return line
	}
	return line[:end]
}
