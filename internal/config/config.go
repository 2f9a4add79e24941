package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "CONFIG_FILE"

type Config struct {
	Port            string        `mapstructure:"port"`
	GinMode         string        `mapstructure:"gin_mode"`
	LogLevel        string        `mapstructure:"log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	MongoURI           string `mapstructure:"mongo_uri"`
	MongoDB            string `mapstructure:"mongo_db"`
	ProductsCollection string `mapstructure:"mongo_products_collection"`
	SearchesCollection string `mapstructure:"mongo_searches_collection"`
	ClicksCollection   string `mapstructure:"mongo_clicks_collection"`

	CatalogURL            string        `mapstructure:"catalog_url"`
	CatalogToken          string        `mapstructure:"catalog_token"`
	CatalogTimeout        time.Duration `mapstructure:"catalog_timeout"`
	CatalogPageSize       int           `mapstructure:"catalog_page_size"`
	CatalogCacheTTL       time.Duration `mapstructure:"catalog_cache_ttl"`
	CatalogForwardFilters bool          `mapstructure:"catalog_forward_filters"`
}

var defaults = map[string]any{
	"port":                      "8080",
	"gin_mode":                  "release",
	"log_level":                 "info",
	"shutdown_timeout":          "5s",
	"mongo_uri":                 "",
	"mongo_db":                  "productSearch",
	"mongo_products_collection": "products",
	"mongo_searches_collection": "searches",
	"mongo_clicks_collection":   "clicks",
	"catalog_url":               "",
	"catalog_token":             "",
	"catalog_timeout":           "8s",
	"catalog_page_size":         100,
	"catalog_cache_ttl":         "30s",
	"catalog_forward_filters":   false,
}

// LoadConfig lee la configuración una sola vez al arrancar.
// Orden de prioridad: variables de entorno (incluido .env), archivo YAML, valores por defecto.
func LoadConfig() (*Config, error) {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			slog.Warn("error loading .env file", "err", err)
		} else {
			slog.Info(".env file loaded")
		}
	}

	return load(getConfigFilepath(os.Args[1:]))
}

func load(configFile string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %q: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.CatalogTimeout <= 0 {
		return fmt.Errorf("catalog_timeout must be positive")
	}
	if c.CatalogPageSize <= 0 {
		return fmt.Errorf("catalog_page_size must be positive")
	}
	if c.CatalogCacheTTL < 0 {
		return fmt.Errorf("catalog_cache_ttl cannot be negative")
	}
	return nil
}

// SlogLevel interpreta LogLevel ("debug", "info", "warn", "error")
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func getConfigFilepath(args []string) string {
	cmdLine := pflag.NewFlagSet("product-search", pflag.ContinueOnError)
	cmdLine.ParseErrorsWhitelist.UnknownFlags = true
	arg := cmdLine.String("config", "", "optional YAML config file")
	_ = cmdLine.Parse(args)
	if env, ok := os.LookupEnv(configFileEnvName); ok && env != "" {
		return env
	}
	return *arg
}
