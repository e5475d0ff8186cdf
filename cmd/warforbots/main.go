package main

import (
	"github.com/alecthomas/kong"

	"github.com/lox/warforbots/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play a game interactively in the terminal"`
	Run      RunCmd           `cmd:"" help:"Play one game headless and print the round log"`
	Simulate SimulateCmd      `cmd:"" help:"Play many games and print statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("warforbots"),
		kong.Description("The card game War, played out between two automatic players"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
