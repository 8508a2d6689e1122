package main

import (
	"fmt"
	"os"

	"github.com/ttacon/chalk"
	"github.com/urfave/cli"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, chalk.Red.Color("ranks: "+err.Error()))
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "ranks"
	app.Usage = "patrol tanks in a simulated arena"

	common := []cli.Flag{
		cli.StringFlag{Name: "config, c", Value: "", Usage: "arena YAML file; built-in defaults when empty"},
		cli.IntFlag{Name: "ticks", Usage: "override run.ticks (0 = until every tank is dead)"},
		cli.StringFlag{Name: "log", Value: "", Usage: "log level (debug, info, warn, error)"},
	}
	with := func(extra ...cli.Flag) []cli.Flag {
		return append(append([]cli.Flag{}, common...), extra...)
	}

	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "Run the arena headless and write the result",
			Flags: with(
				cli.StringFlag{Name: "out, o", Value: "out.json", Usage: "result file"},
				cli.BoolTFlag{Name: "events", Usage: "include the event log in the result"},
			),
			Action: runAction,
		},
		{
			Name:  "serve",
			Usage: "Run the arena in real time and stream frames over websocket",
			Flags: with(
				cli.StringFlag{Name: "addr", Value: "", Usage: "listen address; server.addr when empty"},
			),
			Action: serveAction,
		},
		{
			Name:  "watch",
			Usage: "Run the arena in the terminal",
			Flags: with(
				cli.BoolFlag{Name: "sound", Usage: "beep when a tank fires"},
			),
			Action: watchAction,
		},
		{
			Name:   "route",
			Usage:  "Print the resolved patrol route of every tank",
			Flags:  with(),
			Action: routeAction,
		},
	}
	return app
}
