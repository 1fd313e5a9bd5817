package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	defaultEnv        = EnvLocal
	defaultDataDir    = ".fittrack"
	defaultBackend    = BackendJSON
	defaultOnCorrupt  = "reset"
	defaultAuthScheme = "plain"
	defaultLogLevel   = "info"
)

type Config struct {
	Env            string `mapstructure:"app_env"`
	LogLevel       string `mapstructure:"log_level"`
	DataDir        string `mapstructure:"data_dir"`
	UsersPath      string `mapstructure:"users_path"`
	SettingsPath   string `mapstructure:"settings_path"`
	SessionPath    string `mapstructure:"session_path"`
	DatabasePath   string `mapstructure:"database_path"`
	StorageBackend string `mapstructure:"storage_backend"`
	OnCorrupt      string `mapstructure:"on_corrupt"`
	AuthScheme     string `mapstructure:"auth_scheme"`
}

// MustLoad reads .env (when present), then the environment, fills in
// defaults and computes the data paths under the data directory.
// Panics on an invalid configuration.
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("DATA_DIR", defaultDataDir)
	viper.SetDefault("STORAGE_BACKEND", defaultBackend)
	viper.SetDefault("ON_CORRUPT", defaultOnCorrupt)
	viper.SetDefault("AUTH_SCHEME", defaultAuthScheme)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	dataDir := viper.GetString("DATA_DIR")
	if dataDir == defaultDataDir {
		dataDir = filepath.Join(homeDir, dataDir)
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		fmt.Printf("failed to create data directory: %v\n", err)
	}

	cfg := &Config{
		Env:            viper.GetString("APP_ENV"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		DataDir:        dataDir,
		UsersPath:      filepath.Join(dataDir, "users.json"),
		SettingsPath:   filepath.Join(dataDir, "settings.json"),
		SessionPath:    filepath.Join(dataDir, "session"),
		DatabasePath:   filepath.Join(dataDir, "fittrack.db"),
		StorageBackend: viper.GetString("STORAGE_BACKEND"),
		OnCorrupt:      viper.GetString("ON_CORRUPT"),
		AuthScheme:     viper.GetString("AUTH_SCHEME"),
	}

	if err := cfg.validate(); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	return cfg
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("storage_backend must be %q or %q, got %q", BackendJSON, BackendSQLite, c.StorageBackend)
	}
	switch c.OnCorrupt {
	case "reset", "fail":
	default:
		return fmt.Errorf("on_corrupt must be \"reset\" or \"fail\", got %q", c.OnCorrupt)
	}
	switch c.AuthScheme {
	case "plain", "bcrypt":
	default:
		return fmt.Errorf("auth_scheme must be \"plain\" or \"bcrypt\", got %q", c.AuthScheme)
	}
	return nil
}

func (c *Config) IsProd() bool { return c.Env == EnvProd }

func (c *Config) IsDev() bool { return c.Env == EnvDev }

func (c *Config) IsLocal() bool { return c.Env == EnvLocal || c.Env == "" }
