package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leeroute/internal/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "priority", cfg.Frontier)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "routing_output.txt", cfg.Output)
	assert.Nil(t, cfg.BendPenalty)
	assert.Nil(t, cfg.ViaPenalty)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "leeroute.yaml", `
frontier: FIFO
workers: 2
log_level: debug
output: out.txt
bend_penalty: 1.5
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fifo", cfg.Frontier)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "out.txt", cfg.Output)
	require.NotNil(t, cfg.BendPenalty)
	assert.Equal(t, 1.5, *cfg.BendPenalty)
	assert.Nil(t, cfg.ViaPenalty)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LEEROUTE_WORKERS", "8")
	t.Setenv("LEEROUTE_VIA_PENALTY", "3")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)
	require.NotNil(t, cfg.ViaPenalty)
	assert.Equal(t, 3.0, *cfg.ViaPenalty)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"frontier":     "frontier: random\n",
		"workers":      "workers: 0\n",
		"log_level":    "log_level: chatty\n",
		"bend_penalty": "bend_penalty: -1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, "c.yaml", body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
