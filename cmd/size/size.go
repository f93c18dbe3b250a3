package size

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"termtab/pkg/format"
	"termtab/pkg/termsize"
)

// GetCommand ...
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "size",
		Usage: "Print the terminal dimensions as COLSxROWS",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := termsize.Get()
			if err != nil {
				return fmt.Errorf("querying terminal size: %s", err)
			}

			fmt.Println(format.Dimensions(s))
			return nil
		},
		Flags: []cli.Flag{},
	}
}
