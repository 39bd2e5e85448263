// Command registryctl browses the land registry list views from the terminal,
// without starting the HTTP server.
package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
)

func main() {
	err := newCommand().Run(context.Background(), os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err.Error())
		os.Exit(1)
	}
}

func newCommand() *cli.Command {

	sourceFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "seeds-dir",
			Usage: "directory with <collection>.jsonl seed files, embedded seeds when empty",
		},
		&cli.StringFlag{
			Name:  "views-file",
			Usage: "TOML file with the list views, embedded views when empty",
		},
	}

	stateFlags := append([]cli.Flag{
		&cli.StringFlag{
			Name:     "view",
			Aliases:  []string{"v"},
			Usage:    "name of the view",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "search",
			Aliases: []string{"s"},
			Usage:   "free text search over the searchable fields",
		},
		&cli.StringSliceFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "categorical filter as field=value, repeatable",
		},
	}, sourceFlags...)

	return &cli.Command{
		Name:  "registryctl",
		Usage: "Browse the land registry list views",
		Commands: []*cli.Command{
			{
				Name:  "views",
				Usage: "List the configured views",
				Flags: sourceFlags,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					s, err := openService(cmd)
					if err != nil {
						return err
					}
					views, err := s.ListViews()
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.Root().Writer, renderViews(views))
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "Show one page of a view",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:    "page",
						Aliases: []string{"p"},
						Usage:   "page number, clamped to the available pages",
						Value:   1,
					},
				}, stateFlags...),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					s, name, err := openView(cmd)
					if err != nil {
						return err
					}
					snapshot, err := s.GotoPage(name, cmd.Int("page"))
					if err != nil {
						return err
					}
					view, err := findView(s, name)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.Root().Writer, renderSnapshot(snapshot, view.Columns))
					return nil
				},
			},
			{
				Name:  "export",
				Usage: "Write every page of a view as CSV to stdout",
				Flags: stateFlags,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					s, name, err := openView(cmd)
					if err != nil {
						return err
					}
					return s.Export(name, cmd.Root().Writer)
				},
			},
			{
				Name:  "counters",
				Usage: "Evaluate the dashboard counters of a view",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "view",
						Aliases:  []string{"v"},
						Usage:    "name of the view",
						Required: true,
					},
				}, sourceFlags...),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					s, err := openService(cmd)
					if err != nil {
						return err
					}
					counters, err := s.Counters(cmd.String("view"))
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.Root().Writer, renderSummary("counter", counters))
					return nil
				},
			},
			{
				Name:  "summary",
				Usage: "Count the records of a view by field value",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "field",
						Usage:    "field to group by",
						Required: true,
					},
				}, stateFlags...),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					s, name, err := openView(cmd)
					if err != nil {
						return err
					}
					counts, err := s.Summary(name, cmd.String("field"))
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.Root().Writer, renderSummary(cmd.String("field"), counts))
					return nil
				},
			},
		},
	}
}
