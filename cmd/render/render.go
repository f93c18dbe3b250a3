package render

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"termtab/cmd/shared"
	"termtab/pkg/config"
	"termtab/pkg/log"
	"termtab/pkg/table"
	"termtab/pkg/termsize"
)

// GetCommand ...
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render delimited input as a table",
		ArgsUsage: "[file]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Default()
			if path := cmd.String(shared.ConfigFlag); path != "" {
				if err := cfg.ApplyFile(path); err != nil {
					return fmt.Errorf("loading config: %s", err)
				}
			}
			applyFlags(&cfg, cmd)

			if errors := config.Validate(&cfg); len(errors) > 0 {
				log.ErrorMsg("Argument validation errors:\n")
				for _, err := range errors {
					log.ErrorMsg(" - %s\n", err)
				}
				return fmt.Errorf("exiting")
			}

			return run(cfg, cmd.Args().First())
		},
		Flags: shared.GetRenderFlags(),
	}
}

// applyFlags overrides file config with flags the user set explicitly.
func applyFlags(cfg *config.Render, cmd *cli.Command) {
	if cmd.IsSet(shared.StyleFlag) {
		cfg.Style = cmd.String(shared.StyleFlag)
	}
	if cmd.IsSet(shared.AlignFlag) {
		cfg.Align = cmd.String(shared.AlignFlag)
	}
	if cmd.IsSet(shared.MaxColWidthFlag) {
		cfg.MaxColWidth = int(cmd.Int(shared.MaxColWidthFlag))
	}
	if cmd.IsSet(shared.WidthFlag) {
		cfg.Width = int(cmd.Int(shared.WidthFlag))
	}
	if cmd.IsSet(shared.SeparatorFlag) {
		cfg.Separator = cmd.String(shared.SeparatorFlag)
	}
	if cmd.IsSet(shared.NoColorFlag) {
		cfg.NoColor = cmd.Bool(shared.NoColorFlag)
	}
	if cmd.IsSet(shared.OutputFlag) {
		cfg.Output = cmd.String(shared.OutputFlag)
	}
}

func run(cfg config.Render, path string) error {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("os.Open(%s): %s", path, err)
		}
		defer f.Close()
		in = f
	}

	records, err := readRecords(in, []rune(cfg.Separator)[0])
	if err != nil {
		return fmt.Errorf("reading input: %s", err)
	}

	tbl, err := buildTable(cfg, records)
	if err != nil {
		return err
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	out := os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("os.Create(%s): %s", cfg.Output, err)
		}
		defer f.Close()
		out = f
	}

	switch {
	case cfg.Width > 0:
		tbl.FitTo(cfg.Width)
	case out == os.Stdout && termsize.IsTerminal(out):
		if size, err := termsize.Get(); err == nil {
			tbl.FitTo(size.Cols)
		}
	}

	return tbl.Fprint(out)
}

func readRecords(r io.Reader, sep rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.FieldsPerRecord = -1 // rows may be ragged, missing cells render empty

	return cr.ReadAll()
}

// buildTable turns parsed records into a table, the first record being the
// header row.
func buildTable(cfg config.Render, records [][]string) (*table.Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no input: expected at least a header row")
	}

	tbl := table.New(records[0]...)

	style, err := shared.ParseStyle(cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("shared.ParseStyle(%s): %s", cfg.Style, err)
	}
	tbl.SetStyle(style)

	aligns, err := shared.ParseAligns(cfg.Align)
	if err != nil {
		return nil, fmt.Errorf("shared.ParseAligns(%s): %s", cfg.Align, err)
	}
	for i, a := range aligns {
		tbl.SetAlign(i, a)
	}

	if cfg.MaxColWidth > 0 {
		for i := range records[0] {
			tbl.SetMaxWidth(i, cfg.MaxColWidth)
		}
	}

	if !cfg.NoColor {
		tbl.SetHeaderColor(color.New(color.Bold))
	}

	for _, record := range records[1:] {
		cells := make([]interface{}, len(record))
		for i, c := range record {
			cells[i] = c
		}
		tbl.AddRow(cells...)
	}

	return tbl, nil
}
