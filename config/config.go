package config

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/oarkflow/listingfilter/internal/entities"
	"github.com/oarkflow/listingfilter/internal/utils"
)

// Load reads .env.<APP_ENV> from the application root, if present, and
// registers the application defaults.
func Load() (string, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	cfg, err := New(utils.PathFromRoot(".env." + env))
	if err != nil {
		return env, err
	}
	AppConfig(cfg)
	entities.Config = cfg
	return env, nil
}

type Config struct {
	vip *viper.Viper
}

func New(envPath string) (*Config, error) {
	app := &Config{}
	app.vip = viper.New()
	app.vip.AutomaticEnv()

	if utils.Exists(envPath) {
		app.vip.SetConfigType("env")
		app.vip.SetConfigFile(envPath)

		if err := app.vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", envPath, err)
		}
	}
	return app, nil
}

// Env Get config from env.
func (app *Config) Env(envName string, defaultValue ...any) any {
	value := app.Get(envName, defaultValue...)
	if cast.ToString(value) == "" {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}

		return nil
	}

	return value
}

// Add config to application.
func (app *Config) Add(name string, configuration any) {
	app.vip.Set(name, configuration)
}

// Get config from application.
func (app *Config) Get(path string, defaultValue ...any) any {
	if !app.vip.IsSet(path) {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return nil
	}

	return app.vip.Get(path)
}

// GetString Get string type config from application.
func (app *Config) GetString(path string, defaultValue ...any) string {
	value := cast.ToString(app.Get(path, defaultValue...))
	if value == "" {
		if len(defaultValue) > 0 {
			return cast.ToString(defaultValue[0])
		}

		return ""
	}

	return value
}

// GetInt Get int type config from application.
func (app *Config) GetInt(path string, defaultValue ...any) int {
	value := app.Get(path, defaultValue...)
	if cast.ToString(value) == "" {
		if len(defaultValue) > 0 {
			return cast.ToInt(defaultValue[0])
		}

		return 0
	}

	return cast.ToInt(value)
}

// GetBool Get bool type config from application.
func (app *Config) GetBool(path string, defaultValue ...any) bool {
	value := app.Get(path, defaultValue...)
	if cast.ToString(value) == "" {
		if len(defaultValue) > 0 {
			return cast.ToBool(defaultValue[0])
		}

		return false
	}

	return cast.ToBool(value)
}
