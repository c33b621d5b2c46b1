// Package cli implements the lq command tree.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"linq/internal/config"
	"linq/internal/logging"
	"linq/query"
)

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	cfg        *config.Config
	log        zerolog.Logger
}

// NewRootCommand wires the lq commands to the given streams.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "lq",
		Short:         "Run LINQ-style queries over JSON and YAML arrays",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			log, err := logging.New(a.errOut, cfg.Log)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (json, yaml or toml)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (console, json)")
	pf.String("input-format", "", "input format (json, yaml)")
	pf.Bool("indent", false, "indent JSON output")
	pf.Bool("natural", false, "order strings naturally (file2 before file10)")

	root.AddCommand(
		a.distinctCmd(),
		a.sortCmd(),
		a.groupCmd(),
		a.selectCmd(),
		a.whereCmd(),
		a.elementCmd("first"),
		a.elementCmd("last"),
		a.countCmd(),
		a.sliceCmd("take"),
		a.sliceCmd("skip"),
		a.reverseCmd(),
		a.kindCmd(),
		a.numericCmd("sum"),
		a.numericCmd("min"),
		a.numericCmd("max"),
		a.numericCmd("avg"),
		a.setCmd("union"),
		a.setCmd("except"),
		a.setCmd("intersect"),
	)
	return root
}

// operation transforms the input query. Returning a *query.Query writes its
// elements; any other value is written as is.
type operation func(args []string, q *query.Query[any]) (any, error)

// run reads the input named by the argument after the first positional ones
// and applies op.
func (a *app) run(name string, positional int, op operation) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		var file string
		if len(args) > positional {
			file = args[positional]
		}
		q, err := a.readInput(file)
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := op(args, q)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if rq, ok := res.(*query.Query[any]); ok {
			a.log.Debug().Str("command", name).Int("count", rq.Len()).Dur("elapsed", time.Since(start)).Msg("query finished")
			res = rq.ToArray()
		} else {
			a.log.Debug().Str("command", name).Dur("elapsed", time.Since(start)).Msg("query finished")
		}
		return a.write(res)
	}
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("count %q: %w", s, err)
	}
	return n, nil
}
