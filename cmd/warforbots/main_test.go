package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/warforbots/internal/config"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("warforbots"),
		kong.Vars{"version": "test", "config_file": config.DefaultFile},
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestParseGlobals(t *testing.T) {
	cli, ctx := parse(t, "--seed", "42", "--debug", "--no-color", "run", "--rounds", "10")

	assert.Equal(t, "run", ctx.Command())
	require.NotNil(t, cli.Seed)
	assert.Equal(t, int64(42), *cli.Seed)
	assert.Equal(t, int64(42), cli.seed())
	assert.True(t, cli.Debug)
	assert.True(t, cli.NoColor)
	assert.Equal(t, config.DefaultFile, cli.Config)
	assert.Equal(t, 10, cli.Run.Rounds)
}

func TestParseDefaultsToPlay(t *testing.T) {
	cli, ctx := parse(t)
	assert.Equal(t, "play", ctx.Command())
	assert.Nil(t, cli.Seed)
}

func TestParseSimulate(t *testing.T) {
	cli, ctx := parse(t, "simulate", "-n", "50", "--workers", "2", "--timeout", "2s")
	assert.Equal(t, "simulate", ctx.Command())
	assert.Equal(t, 50, cli.Simulate.Games)
	assert.Equal(t, 2, cli.Simulate.Workers)
	assert.Equal(t, "2s", cli.Simulate.Timeout.String())
}

func TestGlobalsLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "war.hcl")
	require.NoError(t, os.WriteFile(path, []byte("log {\n  level = \"warn\"\n}\n"), 0o644))

	g := &Globals{Config: path}
	cfg, err := g.load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)

	g.Debug = true
	cfg, err = g.load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestRunCmdWritesTranscript(t *testing.T) {
	dir := t.TempDir()
	seed := int64(7)
	g := &Globals{Config: filepath.Join(dir, "missing.hcl"), Seed: &seed}

	cmd := &RunCmd{Rounds: 5, HistoryDir: filepath.Join(dir, "history")}
	require.NoError(t, cmd.Run(g))

	entries, err := os.ReadDir(filepath.Join(dir, "history"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
