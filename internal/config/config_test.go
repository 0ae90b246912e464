package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnMissingDefaultConfig_ShouldFallBackToDefaults(t *testing.T) {
	t.Setenv(expensesFileEnvKey, "")

	s, err := New("")

	require.NoError(t, err)
	assert.Equal(t, BackendCSV, s.Storage().Backend())
	assert.Equal(t, "expenses.csv", s.Storage().File())
}

func Test_OnExplicitMissingConfig_ShouldFail(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func Test_OnConfigFile_ShouldReadStorageSection(t *testing.T) {
	t.Setenv(expensesFileEnvKey, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
storage:
  backend: postgres
  file: /tmp/my-expenses.csv
  postgres:
    host: localhost
    db: expenses
    username: tracker
    password: secret
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := New(path)

	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, s.Storage().Backend())
	assert.Equal(t, "/tmp/my-expenses.csv", s.Storage().File())
	assert.Equal(t, "localhost", s.Storage().Postgres().Host())
	assert.Equal(t, "expenses", s.Storage().Postgres().Database())
	assert.Equal(t, "tracker", s.Storage().Postgres().Username())
	assert.Equal(t, "secret", s.Storage().Postgres().Password())
}

func Test_OnEnvVariable_ShouldOverrideExpensesFile(t *testing.T) {
	t.Setenv(expensesFileEnvKey, "/tmp/from-env.csv")

	s, err := New("")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.csv", s.Storage().File())
}

func Test_OnSetFile_ShouldOverrideEverything(t *testing.T) {
	t.Setenv(expensesFileEnvKey, "/tmp/from-env.csv")

	s, err := New("")
	require.NoError(t, err)

	s.Storage().SetFile("/tmp/from-flag.csv")

	assert.Equal(t, "/tmp/from-flag.csv", s.Storage().File())
}
