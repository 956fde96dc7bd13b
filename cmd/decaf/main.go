package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"decaf/internal/prof"
	"decaf/internal/version"
)

// errUnitsFailed is returned when lexing finished but some unit had errors.
// The diagnostics have already been printed.
var errUnitsFailed = errors.New("compilation units had errors")

// cli is the root command plus the profilers its flags started.
type cli struct {
	root    *cobra.Command
	profile *prof.Session
}

func newCLI() *cli {
	c := &cli{}
	c.root = &cobra.Command{
		Use:               "decaf",
		Short:             "Decaf lexical front end",
		Long:              `decaf turns Decaf sources into classified tokens and lexical diagnostics`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.startProfiling,
	}

	// Глобальные флаги
	flags := c.root.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to keep per unit")
	flags.String("log-level", "warn", "log level (debug|info|warn|error)")
	flags.String("log-file", "", "also write JSON logs to this file")
	flags.String("config", "", "path to decaf.toml (default: search upwards from the working directory)")
	flags.String("cpu-profile", "", "write a CPU profile to this file")
	flags.String("mem-profile", "", "write a heap profile to this file on exit")
	flags.String("trace-file", "", "write a runtime trace to this file")

	c.root.AddCommand(newTokenizeCmd())
	c.root.AddCommand(newVersionCmd())
	return c
}

func (c *cli) startProfiling(cmd *cobra.Command, _ []string) error {
	var opts prof.Options
	opts.CPU, _ = cmd.Flags().GetString("cpu-profile")
	opts.Mem, _ = cmd.Flags().GetString("mem-profile")
	opts.Trace, _ = cmd.Flags().GetString("trace-file")
	if !opts.Enabled() {
		return nil
	}
	session, err := prof.Start(opts)
	if err != nil {
		return err
	}
	c.profile = session
	return nil
}

// Execute runs the command line and stops any profilers it started.
func (c *cli) Execute() error {
	err := c.root.Execute()
	if stopErr := c.profile.Stop(); stopErr != nil {
		err = errors.Join(err, stopErr)
	}
	return err
}

// main runs the CLI. Any error, including units with diagnostics, exits with
// status 1.
func main() {
	if err := newCLI().Execute(); err != nil {
		if !errors.Is(err, errUnitsFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
