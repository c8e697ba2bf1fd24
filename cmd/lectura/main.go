// Command lectura prints the daily reading, scripture passages and digests
// from the terminal using the same configuration as the API.
package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// CLI defines the command-line interface.
var CLI struct {
	Config string `name:"config" short:"c" help:"Config file (default: configs/config.yaml)" type:"path"`

	Today    TodayCmd    `cmd:"" help:"Print the reading for today or --date"`
	Passage  PassageCmd  `cmd:"" help:"Print the text of a reference or its external link"`
	Link     LinkCmd     `cmd:"" help:"Print the external reader URL for a reference"`
	Digest   DigestCmd   `cmd:"" help:"Print today's celebration and activity digests"`
	Token    TokenCmd    `cmd:"" help:"Issue an admin bearer token"`
	Schedule ScheduleCmd `cmd:"" help:"Manage the reading plan stored in Postgres"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lectura"),
		kong.Description("Daily reading, scripture and community digests"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if CLI.Config != "" {
		_ = os.Setenv("CONFIG_PATH", CLI.Config)
	}
	rt, err := newEnv(os.Stdout)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(rt)
	ctx.FatalIfErrorf(err)
}
