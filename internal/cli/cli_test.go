package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"topogen/internal/config"
	"topogen/internal/domain"
	"topogen/internal/repository/sqlite"
)

// isolate keeps the developer's config and environment out of the test
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	oldWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(oldWd) })
	t.Setenv("TOPOGEN_CONFIG", "")
	t.Setenv("TOPOGEN_DATABASE_URL", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestGenerateToStdout(t *testing.T) {
	isolate(t)

	out, _, err := execute(t,
		"--db-driver", "file",
		"--topology", "ring",
		"--protocol", "isis",
		"--nodes", "4",
		"--links", "8",
		"--poll-time", "2024-01-01T00:00:00Z",
	)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "ring", doc["topology"])
	assert.Len(t, doc["nodes"], 4)
	assert.Len(t, doc["isis_links"], 8)
}

func TestGenerateIsReproducible(t *testing.T) {
	isolate(t)
	args := []string{"--db-driver", "file", "--format", "json", "--topology", "random",
		"--protocol", "lldp", "--nodes", "3", "--poll-time", "2024-01-01T00:00:00Z"}

	first, _, err := execute(t, args...)
	require.NoError(t, err)
	second, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "{"))
}

func TestGenerateToSqliteWithMetrics(t *testing.T) {
	isolate(t)
	dbPath := filepath.Join(t.TempDir(), "topogen.db")
	promPath := filepath.Join(t.TempDir(), "topogen.prom")

	_, _, err := execute(t,
		"--db-dsn", dbPath,
		"--topology", "complete",
		"--protocol", "cdp",
		"--nodes", "5",
		"--snmpinterfaces", "2",
		"--ipinterfaces", "1",
		"--metrics-out", promPath,
	)
	require.NoError(t, err)

	repo, err := sqlite.New(dbPath)
	require.NoError(t, err)
	defer repo.Close()
	counts, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, counts["node"])
	assert.Equal(t, 5, counts["cdpelement"])
	assert.Equal(t, 20, counts["cdplink"])
	assert.Equal(t, 2, counts["snmpinterface"])
	assert.Equal(t, 1, counts["ipinterface"])

	prom, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `topogen_entities_generated_total{kind="cdplink"} 20`)

	_, _, err = execute(t, "purge", "--db-dsn", dbPath)
	require.NoError(t, err)
	counts, err = repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, counts["node"])
	assert.Equal(t, 0, counts["cdplink"])
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	isolate(t)
	configPath := filepath.Join(t.TempDir(), "topogen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
generation:
  topology: complete
  protocol: ospf
  nodes: 3
database:
  driver: file
output:
  format: yaml
`), 0644))

	out, _, err := execute(t, "--config", configPath, "--nodes", "4", "--poll-time", "2024-01-01T00:00:00Z")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "complete", doc["topology"])
	assert.Equal(t, "ospf", doc["protocol"])
	assert.Len(t, doc["nodes"], 4)
	assert.Len(t, doc["ospf_links"], 12)
}

func TestInvalidInput(t *testing.T) {
	isolate(t)

	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{"one node", []string{"--db-driver", "file", "--nodes", "1"}, domain.ErrInvalidConfig},
		{"unknown topology", []string{"--db-driver", "file", "--topology", "star"}, domain.ErrUnknownTopology},
		{"unknown protocol", []string{"--db-driver", "file", "--protocol", "bgp"}, domain.ErrUnknownProtocol},
		{"unknown driver", []string{"--db-driver", "mysql"}, domain.ErrInvalidConfig},
		{"postgres without dsn", []string{"--db-driver", "postgres"}, domain.ErrInvalidConfig},
		{"bad poll time", []string{"--db-driver", "file", "--poll-time", "yesterday"}, domain.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Empty(t, out)
		})
	}
}

func TestPurgeRejectsFileDriver(t *testing.T) {
	isolate(t)
	target := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(target, []byte("keep: me\n"), 0644))

	for _, dsn := range []string{"-", target} {
		out, _, err := execute(t, "purge", "--db-driver", "file", "--db-dsn", dsn)
		require.ErrorIs(t, err, domain.ErrInvalidConfig)
		assert.Empty(t, out)
	}

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "keep: me\n", string(data))
}

func TestConfigInit(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, config.DefaultConfigPath(), path)
	assert.Equal(t, path, config.FindConfigPath())

	cfg, _, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultNodes, cfg.Generation.Nodes)
	assert.Equal(t, domain.TopologyRandom, cfg.Generation.Topology)

	_, _, err = execute(t, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, _, err = execute(t, "config", "init", "--force")
	assert.NoError(t, err)

	explicit := filepath.Join(t.TempDir(), "custom.yaml")
	out, _, err = execute(t, "config", "init", "--path", explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, strings.TrimSpace(out))
	assert.FileExists(t, explicit)
}

func TestGenerateToFile(t *testing.T) {
	isolate(t)
	target := filepath.Join(t.TempDir(), "network.json")

	out, _, err := execute(t,
		"--db-driver", "file",
		"--db-dsn", target,
		"--format", "json",
		"--protocol", "lldp",
		"--nodes", "3",
		"--poll-time", "2024-01-01T00:00:00Z",
	)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Len(t, doc["nodes"], 3)
	assert.Len(t, doc["lldp_links"], 6)
}
