package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/voxlab/blockforge/pkg/blocks"
	"github.com/voxlab/blockforge/pkg/codegen"
)

func compileCommand() *cli.Command {
	var (
		cfg       config
		inputPath string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to a saved program JSON file",
			Sources:     cli.EnvVars("BLOCKFORGE_PROGRAM"),
			Destination: &inputPath,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "compile",
		Usage: "Compile a visual program to filter expressions",
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

			graph, err := blocks.NewGraph(program)
			if err != nil {
				return goerr.Wrap(err, "failed to build block graph")
			}

			compiler := codegen.NewCompiler(codegen.DefaultRegistry())
			for _, result := range compiler.Compile(ctx, graph) {
				fmt.Fprintf(c.Root().Writer, "%s\t%s\n", result.Block.ID, result.Code)
			}
			return nil
		},
	}
}

func validateCommand() *cli.Command {
	var (
		cfg       config
		inputPath string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to a saved program JSON file",
			Sources:     cli.EnvVars("BLOCKFORGE_PROGRAM"),
			Destination: &inputPath,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "validate",
		Usage: "Validate a program file against the block schema",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if inputPath == "" {
				return goerr.New("input file path is required")
			}

			if _, err := blocks.LoadProgram(inputPath); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Program is valid: %s\n", inputPath)
			return nil
		},
	}
}
