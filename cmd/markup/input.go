package main

import (
	"io"
	"os"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/state"
)

// readInput reads the named file, or stdin when the name is empty or "-".
// The format comes from the flag when set, then the file extension, then
// the configuration.
func (e *env) readInput(stdin io.Reader, args []string, formatFlag string) ([]byte, state.Format, error) {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}

	format := e.cfg.StateFormat()
	if name != "-" {
		format = state.FormatFor(name, format)
	}
	if formatFlag != "" {
		f, err := state.ParseFormat(formatFlag)
		if err != nil {
			return nil, "", err
		}
		format = f
	}

	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, "", errors.Newf(errors.CategoryUsage, "cannot read %s", name).Wrap(err)
	}

	e.logger.Debug("input read", "source", name, "format", format, "bytes", len(data))
	return data, format, nil
}
