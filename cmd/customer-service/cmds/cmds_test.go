package cmds

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"customer-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	logger.Debug("hidden")
	logger.Info("visible", "customer_id", 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "customer-service", entry["service"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewLogger_TextDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LoggingConfig{Level: "debug", Format: "text"}, &buf)

	logger.Debug("debug line")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=\"debug line\"")
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := NewRootCommand()
	root.AddCommand(GetServeCommand(), GetMigrateCommand())

	for _, name := range []string{"serve", "migrate"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	flag := root.PersistentFlags().Lookup(envFileFlag)
	require.NotNil(t, flag)
	assert.Equal(t, ".env", flag.DefValue)
}

func TestMigrateCommand_RequiresSQLite(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")

	root := NewRootCommand()
	root.AddCommand(GetMigrateCommand())
	root.SetArgs([]string{"migrate", "--env-file", filepath.Join(t.TempDir(), "missing.env")})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_BACKEND=sqlite")
}

func TestMigrateCommand_AppliesSchemaFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	dsn := fmt.Sprintf("file:migrate_cmd_%d?mode=memory&cache=shared", time.Now().UnixNano())
	require.NoError(t, os.WriteFile(envFile, []byte("STORE_BACKEND=sqlite\nDATABASE_DSN="+dsn+"\nLOG_LEVEL=error\n"), 0o600))

	// godotenv does not override variables that are already set
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("LOG_LEVEL", "")
	for _, key := range []string{"STORE_BACKEND", "DATABASE_DSN", "LOG_LEVEL"} {
		require.NoError(t, os.Unsetenv(key))
	}

	var out bytes.Buffer
	root := NewRootCommand()
	root.AddCommand(GetMigrateCommand())
	root.SetArgs([]string{"migrate", "--env-file", envFile})
	root.SetOut(&out)

	require.NoError(t, root.Execute())
	assert.Equal(t, "schema version 1 (dirty: false)\n", out.String())
}

func TestServeCommand_InvalidConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	root := NewRootCommand()
	root.AddCommand(GetServeCommand())
	root.SetArgs([]string{"serve", "--env-file", ""})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
