package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/voxlab/blockforge/pkg/blocks"
	"github.com/voxlab/blockforge/pkg/codegen"
	"github.com/voxlab/blockforge/pkg/model"
)

// replTypes maps the REPL's object keyword to the declared value type
var replTypes = map[string]model.ValueType{
	blocks.TypeLocation:    model.ValueTypeLocation,
	blocks.TypeTime:        model.ValueTypeTime,
	blocks.TypeMob:         model.ValueTypeMob,
	blocks.TypeBlockObject: model.ValueTypeBlockObject,
}

func replCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "repl",
		Usage: "Interactively generate filter expressions from descriptors",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.withLogger(ctx)

			rl, err := readline.New("accessor> ")
			if err != nil {
				return goerr.Wrap(err, "failed to start readline")
			}
			defer rl.Close()

			fmt.Fprintf(c.Root().Writer, "Enter: <object> <field> <descriptor>  (e.g. mob NAME {...})\n")
			fmt.Fprintf(c.Root().Writer, "Objects: location, time, mob, block_object. Type 'exit' to quit.\n")

			for {
				line, err := rl.Readline()
				if err == readline.ErrInterrupt {
					continue
				}
				if err == io.EOF {
					break
				}
				if err != nil {
					return goerr.Wrap(err, "failed to read line")
				}

				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" {
					break
				}

				parts := strings.SplitN(line, " ", 3)
				if len(parts) < 3 {
					fmt.Fprintf(c.Root().Writer, "usage: <object> <field> <descriptor>\n")
					continue
				}

				objType, ok := replTypes[parts[0]]
				if !ok {
					fmt.Fprintf(c.Root().Writer, "unknown object type: %s\n", parts[0])
					continue
				}

				field := model.FieldCode(strings.ToUpper(parts[1]))
				descriptor := parts[2]

				var code string
				switch objType {
				case model.ValueTypeMob, model.ValueTypeBlockObject:
					code = codegen.ReferenceObjectFilter(ctx, descriptor, field)
				case model.ValueTypeLocation:
					code = codegen.LocationExpression(ctx, descriptor, field)
				default:
					fmt.Fprintf(c.Root().Writer, "%s values are not supported\n", parts[0])
					continue
				}

				fmt.Fprintf(c.Root().Writer, "%s\n", code)
			}

			return nil
		},
	}
}
