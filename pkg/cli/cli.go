package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "blockforge",
		Usage: "Visual block program compiler and annotation dataset exporter",
		Commands: []*cli.Command{
			compileCommand(),
			validateCommand(),
			replCommand(),
			exportCommand(),
			pushCommand(),
			pullCommand(),
			listCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
