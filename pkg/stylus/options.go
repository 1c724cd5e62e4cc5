// Package stylus formats and merges asset portfolios into the Stylus
// worksheet layout.
package stylus

import (
	"errors"
	"io"
)

// Options configures a single formatting run.
type Options struct {
	// InputPath and InputSheet name the worksheet to read.
	InputPath  string
	InputSheet string
	// OutputPath and OutputSheet name the worksheet to write. Both the
	// workbook and the worksheet must already exist.
	OutputPath  string
	OutputSheet string
	// ExistingPath and ExistingSheet name an existing portfolio to join
	// the input into. Empty ExistingPath selects format mode.
	ExistingPath  string
	ExistingSheet string

	// InputStylus marks the input worksheet as already Stylus-formatted.
	InputStylus bool
	// ExistingStylus marks the existing worksheet as Stylus-formatted.
	ExistingStylus bool

	// MappingPath names an optional YAML column-alias file.
	MappingPath string

	// Progress receives one line per pipeline step. Nil discards.
	Progress io.Writer
}

// JoinMode reports whether an existing portfolio is being updated.
func (o Options) JoinMode() bool {
	return o.ExistingPath != ""
}

// Validate checks that the required paths and sheet names are set.
func (o Options) Validate() error {
	if o.InputPath == "" || o.InputSheet == "" {
		return errors.New("input workbook and sheet are required")
	}
	if o.OutputPath == "" || o.OutputSheet == "" {
		return errors.New("output workbook and sheet are required")
	}
	if o.JoinMode() && o.ExistingSheet == "" {
		return errors.New("existing workbook requires a sheet name")
	}
	return nil
}
