package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/kailas-cloud/shopassist/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "shopassist:", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "shopassist",
		Usage:   "Shopping assistant: vector search over a product catalog plus cooking instructions",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env",
				Usage: "path to a .env file",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file (default: config/$ENV.yaml)",
			},
		},
		Action: runAction,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Ensure the index, search the sample query and print cooking instructions",
				Action: runAction,
			},
			{
				Name:  "index",
				Usage: "Create the index and load the catalog into it",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "index the catalog even if the index already exists",
					},
					&cli.BoolFlag{
						Name:  "recreate",
						Usage: "drop the index and its documents first",
					},
				},
				Action: indexAction,
			},
			{
				Name:      "search",
				Usage:     "Search the catalog",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "number of results (default: index.top_k)",
					},
				},
				Action: searchAction,
			},
			{
				Name:      "ask",
				Usage:     "Search the catalog and generate cooking instructions",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "number of results (default: index.top_k)",
					},
				},
				Action: askAction,
			},
			{
				Name:   "serve",
				Usage:  "Start the HTTP API",
				Action: serveAction,
			},
		},
	}
}
