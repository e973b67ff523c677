package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) func() {
	// save original values
	origConfigDir := configDir
	origConfigFile := configFile

	// create temp directory
	tmpDir, err := os.MkdirTemp("", "taskboard_config_test_*")
	require.NoError(t, err)

	configDir = tmpDir
	configFile = filepath.Join(tmpDir, "config.yaml")

	return func() {
		os.RemoveAll(tmpDir)
		configDir = origConfigDir
		configFile = origConfigFile
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, "", cfg.ThemeName) // empty until set
	assert.Equal(t, "categories", cfg.StorageKey)
}

func TestLoadConfig_Default(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// should return default values when no config file exists
	assert.Equal(t, filepath.Join(configDir, "taskboard.db"), cfg.DBPath)
	assert.Equal(t, "categories", cfg.StorageKey)
	assert.False(t, ConfigExists(), "loading must not create the file")
}

func TestSaveAndLoadConfig(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg := &Config{
		DBPath:     filepath.Join(configDir, "test.db"),
		ThemeName:  "dark",
		StorageKey: "categories-work",
	}

	err := SaveConfig(cfg)
	require.NoError(t, err)
	assert.True(t, ConfigExists())

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}

func TestSaveConfig_CreatesDirectory(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	// remove the config directory
	os.RemoveAll(configDir)

	cfg := GetDefaultConfig()
	err := SaveConfig(cfg)
	require.NoError(t, err)

	// verify directory was created
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestUpdateTheme(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	// save initial config
	cfg := GetDefaultConfig()
	err := SaveConfig(cfg)
	require.NoError(t, err)

	err = UpdateTheme("light")
	require.NoError(t, err)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.ThemeName)
	assert.Equal(t, cfg.DBPath, loaded.DBPath)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, SaveConfig(&Config{
		DBPath:     filepath.Join(configDir, "file.db"),
		ThemeName:  "dark",
		StorageKey: "from-file",
	}))

	t.Setenv("TASKBOARD_STORAGE_KEY", "from-env")
	t.Setenv("TASKBOARD_DB_PATH", "/tmp/env.db")

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env", loaded.StorageKey)
	assert.Equal(t, "/tmp/env.db", loaded.DBPath)
	assert.Equal(t, "dark", loaded.ThemeName)
}

func TestLoadConfig_EmptyValuesGetDefaults(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, os.WriteFile(configFile, []byte("db_path: \"\"\nstorage_key: \"\"\n"), 0644))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, "taskboard.db"), loaded.DBPath)
	assert.Equal(t, "categories", loaded.StorageKey)
}

func TestSetConfigDir(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	dir := filepath.Join(t.TempDir(), "alt")
	SetConfigDir(dir)

	assert.Equal(t, dir, GetConfigDir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), GetConfigFile())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "taskboard.db"), cfg.DBPath)
}
