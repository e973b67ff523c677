package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	DBPath     string `mapstructure:"db_path"`
	ThemeName  string `mapstructure:"theme_name"`
	StorageKey string `mapstructure:"storage_key"`
}

const (
	envPrefix         = "TASKBOARD"
	defaultStorageKey = "categories"
)

var (
	configDir  string
	configFile string
)

func init() {
	// get home dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".taskboard")
	configFile = filepath.Join(configDir, "config.yaml")
}

// SetConfigDir points config (and the default database) at dir.
func SetConfigDir(dir string) {
	configDir = dir
	configFile = filepath.Join(dir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

// viper instance with defaults and TASKBOARD_* env overrides
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults := GetDefaultConfig()
	v.SetDefault("db_path", defaults.DBPath)
	v.SetDefault("theme_name", defaults.ThemeName)
	v.SetDefault("storage_key", defaults.StorageKey)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// loads config from file, env and defaults, in that order of precedence: env > file > defaults
func LoadConfig() (*Config, error) {
	if err := EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper()

	if ConfigExists() {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(configDir, "taskboard.db")
	}
	if cfg.StorageKey == "" {
		cfg.StorageKey = defaultStorageKey
	}

	return &cfg, nil
}

// saves config to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("db_path", cfg.DBPath)
	v.Set("theme_name", cfg.ThemeName)
	v.Set("storage_key", cfg.StorageKey)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// returns default config
func GetDefaultConfig() *Config {
	return &Config{
		DBPath:     filepath.Join(configDir, "taskboard.db"),
		ThemeName:  "",
		StorageKey: defaultStorageKey,
	}
}

// updates theme in config file
func UpdateTheme(themeName string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ThemeName = themeName
	return SaveConfig(cfg)
}
