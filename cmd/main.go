package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"termtab/cmd/render"
	"termtab/cmd/size"
	"termtab/cmd/version"
	"termtab/pkg/log"
)

func main() {
	app := &cli.Command{
		Name:  "termtab",
		Usage: "render tables sized to your terminal",
		Commands: []*cli.Command{
			size.GetCommand(),
			render.GetCommand(),
			version.GetCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
		os.Exit(1)
	}
}
