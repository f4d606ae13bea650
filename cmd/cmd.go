// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   "config.toml",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Override [log] level (debug, info, warn, error)",
		},
	}
}

// inputFlags selects the profile to display and the pinned candidates.
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Argument file (.json or .toml)",
		},
		&cli.StringFlag{
			Name:    "preset",
			Aliases: []string{"p"},
			Usage:   "Built-in profile (see 'prefview presets')",
		},
		&cli.StringFlag{
			Name:    "library",
			Aliases: []string{"l"},
			Usage:   "Name of a profile saved in the library",
		},
		&cli.IntFlag{
			Name:  "c1",
			Usage: "Pin a candidate index in the primary highlight",
			Value: -1,
		},
		&cli.IntFlag{
			Name:  "c2",
			Usage: "Pin a candidate index in the secondary highlight",
			Value: -1,
		},
		&cli.BoolFlag{
			Name:    "margins",
			Aliases: []string{"m"},
			Usage:   "Compute the margin matrix when the arguments carry none",
		},
	}
}

func withInput(flags ...cli.Flag) []cli.Flag {
	return append(inputFlags(), flags...)
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create configuration and initialize the profile library",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write the default configuration to --config",
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Action: r.SetupDatabase,
			},
		},
	}
}

// showCommand launches the interactive widget
func showCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Display a profile interactively (hover to highlight, click to count)",
		Flags: withInput(
			&cli.StringFlag{
				Name:  "title",
				Usage: "Title shown above the widget (defaults to the profile name)",
			},
			&cli.BoolFlag{
				Name:  "no-help",
				Usage: "Hide the status line and key help",
			},
		),
		Action: r.Show,
	}
}

func renderCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "render",
		Usage:  "Print the widget once without interaction",
		Flags:  inputFlags(),
		Action: r.Render,
	}
}

func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write a static export of a profile",
		Flags: withInput(
			&cli.StringFlag{
				Name:  "format",
				Usage: "Export format: text, markdown, csv or json",
				Value: "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output path (file for text/json, directory for markdown, base name for csv); stdout when empty",
			},
		),
		Action: r.Export,
	}
}

func summaryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Majority and Condorcet results and the winners of each voting method",
		Flags: withInput(
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "rounds",
				Usage: "Show the reduced profile after each Instant Runoff and Coombs elimination",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		),
		Action: r.Summary,
	}
}

func presetsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "List built-in profiles",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Presets,
	}
}

func generateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a random profile as an argument file",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "cands",
				Usage: "Number of candidates",
				Value: 3,
			},
			&cli.IntFlag{
				Name:  "voters",
				Usage: "Number of voters",
				Value: 10,
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "Random seed (0 picks one)",
			},
			&cli.BoolFlag{
				Name:    "margins",
				Aliases: []string{"m"},
				Usage:   "Include the margin matrix",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file (.json or .toml); stdout JSON when empty",
			},
		},
		Action: r.Generate,
	}
}

// libraryCommand manages saved profiles
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "library",
		Aliases: []string{"lib"},
		Usage:   "Manage the profile library",
		Commands: []*cli.Command{
			{
				Name:  "save",
				Usage: "Save a profile under a name",
				Flags: withInput(
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Usage:   "Library name (defaults to the profile name)",
					},
					&cli.StringFlag{
						Name:    "description",
						Aliases: []string{"d"},
						Usage:   "Free-form description",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Replace an existing profile with the same name",
					},
				),
				Action: r.LibrarySave,
			},
			{
				Name:  "list",
				Usage: "List saved profiles",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "match",
						Usage: "Only names matching this SQL LIKE pattern",
					},
					&cli.IntFlag{
						Name:  "cands",
						Usage: "Only profiles with this many candidates",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of profiles to return",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.LibraryList,
			},
			{
				Name:  "delete",
				Usage: "Delete a saved profile",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Action: r.LibraryDelete,
			},
		},
	}
}
