package stylus

import (
	"fmt"
	"io"

	"github.com/mpitools/stylus-go/pkg/stylus/models"
	"github.com/mpitools/stylus-go/pkg/stylus/parser"
	"github.com/mpitools/stylus-go/pkg/stylus/writer"
)

// Run executes one format or join pass: load the input worksheet, merge
// it into the existing portfolio when one is named, update the metadata,
// and write the result to the output worksheet.
func Run(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	cmap := parser.DefaultColumnMap()
	if opts.MappingPath != "" {
		var err error
		cmap, err = parser.LoadColumnMap(opts.MappingPath)
		if err != nil {
			return err
		}
	}

	table, meta, err := loadSheet(opts.InputPath, opts.InputSheet, opts.InputStylus, cmap)
	if err != nil {
		return err
	}
	fmt.Fprintf(progress, "data imported from %s\n", opts.InputPath)

	if opts.JoinMode() {
		existing, existingMeta, err := loadSheet(opts.ExistingPath, opts.ExistingSheet, opts.ExistingStylus, cmap)
		if err != nil {
			return err
		}
		fmt.Fprintf(progress, "data imported from %s\n", opts.ExistingPath)
		table = Merge(existing, table)
		meta = UpdateMetadata(table, existingMeta, meta)
		fmt.Fprintln(progress, "data merged")
	} else {
		meta = UpdateMetadata(table, meta, nil)
	}

	out, err := parser.OpenWorkbook(opts.OutputPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := parser.RequireSheet(out, opts.OutputSheet); err != nil {
		return err
	}
	if err := writer.Write(out, opts.OutputSheet, table, meta); err != nil {
		return err
	}
	if err := out.Save(); err != nil {
		return fmt.Errorf("save %s: %w", opts.OutputPath, err)
	}
	fmt.Fprintf(progress, "portfolio written to %s\n", opts.OutputPath)
	return nil
}

func loadSheet(path, sheet string, stylusFormatted bool, cmap *parser.ColumnMap) (*models.Table, *models.Metadata, error) {
	f, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	if stylusFormatted {
		return parser.LoadStylus(f, sheet)
	}
	return parser.LoadRaw(f, sheet, cmap)
}
