package config

import (
	"github.com/oarkflow/listingfilter/internal/interfaces"
)

func AppConfig(config interfaces.Config) {
	config.Add("app", map[string]any{
		"name":           config.Env("APP_NAME", "Listing Filter"),
		"debug":          config.Env("APP_DEBUG", false),
		"host":           config.Env("APP_HOST", "0.0.0.0:8080"),
		"open_browser":   config.Env("OPEN_BROWSER", false),
		"view_extension": config.Env("VIEW_EXTENSION", ".html"),
		"request_limit":  config.Env("REQUEST_LIMIT", 100),
	})

	config.Add("log", map[string]any{
		"level": config.Env("LOG_LEVEL", "info"),
	})

	config.Add("cli", map[string]any{
		"command": config.Env("CLI_COMMAND", "listingfilter"),
	})

	config.Add("workspace", map[string]any{
		"file": config.Env("WORKSPACE_FILE", "workspace.yaml"),
	})
}
