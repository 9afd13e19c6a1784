package common

import (
	"fmt"

	"github.com/oarkflow/listingfilter/config"
	"github.com/oarkflow/listingfilter/internal/entities"
	"github.com/oarkflow/listingfilter/internal/logging"
	"github.com/oarkflow/listingfilter/internal/services/workspace"
	"github.com/oarkflow/listingfilter/internal/utils"
)

// Execute loads configuration and applies the configured log level. It
// returns the application environment.
func Execute() (string, error) {
	env, err := config.Load()
	if err != nil {
		return env, err
	}
	logging.SetLevel(entities.Config.GetString("log.level"))
	return env, nil
}

// SetupWorkspace serves paths when given, otherwise the configured workspace
// file.
func SetupWorkspace(paths ...string) error {
	var (
		ws  *workspace.Workspace
		err error
	)
	if len(paths) > 0 {
		ws, err = workspace.FromPaths(paths...)
	} else {
		file := entities.Config.GetString("workspace.file")
		if !utils.Exists(file) {
			file = utils.PathFromRoot(file)
		}
		ws, err = workspace.Load(file)
	}
	if err != nil {
		return fmt.Errorf("setup workspace: %w", err)
	}
	entities.Workspace = ws
	for i, root := range ws.Roots {
		entities.Logger.Info().Int("root", i).Str("name", root.Name).Str("path", root.Path).Msg("serving")
	}
	return nil
}
