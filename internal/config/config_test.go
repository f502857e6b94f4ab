package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"season-sim/internal/season"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad_DefaultsAndRelativeRoster(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "players.csv"), "Name,Position,SeasonProjection,InjuryProb,StdDev\n")
	cfgPath := filepath.Join(dir, "run.yaml")
	writeFile(t, cfgPath, "roster_file: players.csv\nseed: 42\n")

	c, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "players.csv"), c.RosterFile)
	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, "sequential", c.Sampling)
	assert.Equal(t, "greedy", c.Selector)
	assert.Equal(t, DefaultIterations, c.MonteCarlo.Iterations)

	e, err := c.Engine()
	require.NoError(t, err)
	assert.Equal(t, season.SamplingSequential, e.Sampling)
	assert.Equal(t, "greedy", e.Selector.Name())
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"sampling": "sampling: distributed\n",
		"selector": "selector: optimal\n",
		"yaml":     "seed: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, name+".yaml")
			writeFile(t, p, body)
			_, err := Load(p)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestNewServer_Env(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("RESULT_TTL", "15m")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173,https://example.org")

	s, err := NewServer()
	require.NoError(t, err)
	assert.Equal(t, "9090", s.Port)
	assert.Equal(t, 15*time.Minute, s.ResultTTL)
	assert.Equal(t, []string{"http://localhost:5173", "https://example.org"}, s.CORSOrigins)
	assert.Equal(t, "./examples/rosters", s.RosterDir)
	assert.False(t, s.Production())
}
