package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"linq/query"
)

var ErrNotArray = errors.New("input is not an array")

// readInput decodes the array in path, or stdin when path is empty or "-".
func (a *app) readInput(path string) (*query.Query[any], error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if a.cfg.Input.Format == "yaml" {
		// YAML goes through JSON so numbers decode as float64 in both formats
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotArray, doc)
	}

	a.log.Debug().Int("count", len(items)).Str("format", a.cfg.Input.Format).Msg("input loaded")
	return query.From(items), nil
}

func (a *app) write(v any) error {
	var (
		out []byte
		err error
	)
	if a.cfg.Output.Indent {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	out = append(out, '\n')
	_, err = a.out.Write(out)
	return err
}
