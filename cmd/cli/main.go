package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/oarkflow/listingfilter/cmd/cli/commands"
	"github.com/oarkflow/listingfilter/cmd/common"
	"github.com/oarkflow/listingfilter/internal/entities"
	"github.com/oarkflow/listingfilter/internal/interfaces"
)

func Setup() (string, error) {
	env, err := common.Execute()
	if err != nil {
		return env, err
	}
	InitCli(env)
	return env, nil
}

func InitCli(env string) {
	cliCmd := entities.Config.GetString("cli.command")
	appName := entities.Config.GetString("app.name")

	entities.CliApp = &cli.App{
		Name:    cliCmd,
		Usage:   fmt.Sprintf("%s: files-only and image-preview toggles for directory listings", appName),
		Version: "0.4.0",
	}
	for _, cmd := range RegisteredCommands(env) {
		entities.CliApp.Commands = append(entities.CliApp.Commands, ToCliCommand(cmd))
	}
}

func Run() {
	if _, err := Setup(); err != nil {
		entities.Logger.Fatal().Err(err).Msg("setup failed")
	}
	if err := entities.CliApp.Run(os.Args); err != nil {
		entities.Logger.Fatal().Err(err).Msg("command failed")
	}
}

func RegisteredCommands(env string) []interfaces.Command {
	return []interfaces.Command{
		&commands.ServeCommand{Env: env},
		&commands.FilterCommand{},
		&commands.InspectCommand{},
	}
}

func ToCliCommand(cmd interfaces.Command) *cli.Command {
	cliCmd := &cli.Command{
		Name:      cmd.Signature(),
		Usage:     cmd.Description(),
		ArgsUsage: cmd.ArgsUsage(),
		Flags:     cmd.Flags(),
		Action:    cmd.Handle,
	}

	subCmds := cmd.Subcommands()
	if len(subCmds) > 0 {
		cliCmd.Subcommands = make([]*cli.Command, len(subCmds))
		for i, subCmd := range subCmds {
			cliCmd.Subcommands[i] = ToCliCommand(subCmd)
		}
	}

	return cliCmd
}
