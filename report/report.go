// Package report renders routed nets as one line per net:
//
//	<net> Cost: <cost, 2 decimals> Path: (layer,x,y) (layer,x,y) ...
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/leeroute/netroute"
)

// Format renders a single route without a trailing newline.
func Format(r netroute.Route) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Cost: %.2f Path:", r.Net, r.Cost)
	for _, c := range r.Path {
		b.WriteByte(' ')
		b.WriteString(c.String())
	}
	return b.String()
}

// Write renders routes to w in the given order.
func Write(w io.Writer, routes []netroute.Route) error {
	bw := bufio.NewWriter(w)
	for _, r := range routes {
		if _, err := bw.WriteString(Format(r) + "\n"); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

// WriteFile renders routes into the named file, truncating it.
func WriteFile(path string, routes []netroute.Route) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("report: %w", cerr)
		}
	}()

	return Write(f, routes)
}
