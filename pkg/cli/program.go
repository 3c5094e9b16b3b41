package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/voxlab/blockforge/pkg/blocks"
	"github.com/voxlab/blockforge/pkg/model"
)

func pushCommand() *cli.Command {
	var (
		cfg       config
		inputPath string
		name      string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to a saved program JSON file",
			Sources:     cli.EnvVars("BLOCKFORGE_PROGRAM"),
			Destination: &inputPath,
		},
		&cli.StringFlag{
			Name:        "name",
			Aliases:     []string{"n"},
			Usage:       "Program name (overrides the one in the file)",
			Destination: &name,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "push",
		Usage: "Store a program in the repository",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if inputPath == "" {
				return goerr.New("input file path is required")
			}
			ctx = cfg.withLogger(ctx)

			program, err := blocks.LoadProgram(inputPath)
			if err != nil {
				return err
			}

			if name != "" {
				program.Name = name
			}
			if program.ID == "" {
				program.ID = model.NewProgramID()
			}
			now := time.Now()
			if program.CreatedAt.IsZero() {
				program.CreatedAt = now
			}
			program.UpdatedAt = now

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			if err := repo.PutProgram(ctx, program); err != nil {
				return goerr.Wrap(err, "failed to store program")
			}

			fmt.Fprintf(c.Root().Writer, "Program stored: %s\n", program.ID)
			return nil
		},
	}
}

func pullCommand() *cli.Command {
	var (
		cfg config
		id  string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "id",
			Usage:       "Program ID",
			Required:    true,
			Destination: &id,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "pull",
		Usage: "Fetch a program from the repository and print it as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.withLogger(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			program, err := repo.GetProgram(ctx, model.ProgramID(id))
			if err != nil {
				return goerr.Wrap(err, "failed to fetch program")
			}

			data, err := json.MarshalIndent(program, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to serialize program")
			}

			fmt.Fprintf(c.Root().Writer, "%s\n", data)
			return nil
		},
	}
}

func listCommand() *cli.Command {
	var (
		cfg    config
		offset int64
		limit  int64
	)

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:        "offset",
			Usage:       "Number of programs to skip",
			Destination: &offset,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of programs to list",
			Value:       20,
			Destination: &limit,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "list",
		Usage: "List stored programs",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.withLogger(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			programs, err := repo.ListPrograms(ctx, int(offset), int(limit))
			if err != nil {
				return goerr.Wrap(err, "failed to list programs")
			}

			for _, p := range programs {
				fmt.Fprintf(c.Root().Writer, "%s\t%s\t%d blocks\t%s\n",
					p.ID, p.Name, len(p.Blocks), p.CreatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}
