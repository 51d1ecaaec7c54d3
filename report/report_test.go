package report_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leeroute/grid"
	"github.com/katalvlaran/leeroute/netroute"
	"github.com/katalvlaran/leeroute/report"
)

var routes = []netroute.Route{
	{Net: "net1", Cost: 4, Path: []grid.Cell{grid.At(0, 0, 0), grid.At(0, 1, 0)}},
	{Net: "net2", Cost: 3.456, Path: []grid.Cell{grid.At(1, 2, 3)}},
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "net1 Cost: 4.00 Path: (0,0,0) (0,1,0)", report.Format(routes[0]))
	assert.Equal(t, "net2 Cost: 3.46 Path: (1,2,3)", report.Format(routes[1]))
	assert.Equal(t, "empty Cost: 0.00 Path:", report.Format(netroute.Route{Net: "empty"}))
}

func TestWrite(t *testing.T) {
	var b strings.Builder
	require.NoError(t, report.Write(&b, routes))
	assert.Equal(t,
		"net1 Cost: 4.00 Path: (0,0,0) (0,1,0)\nnet2 Cost: 3.46 Path: (1,2,3)\n",
		b.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_Error(t *testing.T) {
	err := report.Write(failingWriter{}, routes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

// TestWriteFile_FromRegistry renders what a Router stored.
func TestWriteFile_FromRegistry(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	rt, err := netroute.NewRouter(g, netroute.WithPenalties(1, 0))
	require.NoError(t, err)
	_, err = rt.RouteNet("net1", []grid.Cell{grid.At(0, 0, 0), grid.At(0, 4, 0)})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "routing_output.txt")
	require.NoError(t, report.WriteFile(path, rt.Registry().Routes()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "net1 Cost: 4.00 Path: (0,0,0) (0,1,0) (0,2,0) (0,3,0) (0,4,0)\n", string(data))

	err = report.WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
