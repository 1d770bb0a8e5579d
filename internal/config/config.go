package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Env             string        `mapstructure:"ENV"`
	Port            string        `mapstructure:"PORT" validate:"required,numeric"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	CORSAllowed     string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	FrontendDist    string        `mapstructure:"FRONTEND_DIST"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	WarehouseDriver  string `mapstructure:"WAREHOUSE_DRIVER" validate:"oneof=databricks postgres"`
	WarehouseWorkers int64  `mapstructure:"WAREHOUSE_WORKERS" validate:"min=1"`
	WarehouseDSN     string `mapstructure:"WAREHOUSE_DSN"`

	DatabricksHost     string `mapstructure:"DATABRICKS_SERVER_HOSTNAME"`
	DatabricksHTTPPath string `mapstructure:"DATABRICKS_HTTP_PATH"`
	DatabricksPort     int    `mapstructure:"DATABRICKS_PORT"`
	DatabricksCatalog  string `mapstructure:"DATABRICKS_CATALOG"`
	DatabricksSchema   string `mapstructure:"DATABRICKS_SCHEMA"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("FRONTEND_DIST", "frontend/dist")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("WAREHOUSE_DRIVER", "databricks")
	v.SetDefault("WAREHOUSE_WORKERS", 5)
	v.SetDefault("WAREHOUSE_DSN", "")
	v.SetDefault("DATABRICKS_SERVER_HOSTNAME", "")
	v.SetDefault("DATABRICKS_HTTP_PATH", "")
	v.SetDefault("DATABRICKS_PORT", 443)
	v.SetDefault("DATABRICKS_CATALOG", "main")
	v.SetDefault("DATABRICKS_SCHEMA", "customer_journey")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.WarehouseDriver = strings.ToLower(strings.TrimSpace(cfg.WarehouseDriver))
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas. A nil result means all origins.
func (c Config) AllowedOrigins() []string {
	if strings.TrimSpace(c.CORSAllowed) == "*" {
		return nil
	}
	var out []string
	for _, o := range strings.Split(c.CORSAllowed, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
