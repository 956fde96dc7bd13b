package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"decaf/internal/diagfmt"
	"decaf/internal/driver"
	"decaf/internal/observ"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.decaf|dir>",
		Short: "Tokenize Decaf source files",
		Long:  `Tokenize breaks Decaf sources into tokens with their semantic values and reports lexical diagnostics`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	cmd.Flags().Int("jobs", 0, "units lexed in parallel for a directory (0 = GOMAXPROCS)")
	cmd.Flags().Int("max-tokens", 0, "stop each unit after this many tokens (0 = unlimited)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer st.closer.Close()

	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	timer := observ.NewTimer()
	opts := driver.Options{
		MaxDiagnostics: st.cfg.Diagnostics.Max,
		MaxTokens:      st.cfg.Driver.MaxTokens,
		Jobs:           st.cfg.Driver.Jobs,
		Logger:         st.logger,
		Timer:          timer,
	}

	var units []*driver.TokenizeResult
	if info.IsDir() {
		res, err := driver.TokenizeDir(cmd.Context(), target, opts)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		units = res.Units
	} else {
		res, err := driver.Tokenize(cmd.Context(), target, opts)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		units = []*driver.TokenizeResult{res}
	}

	// json и msgpack несут диагностики внутри дампа, pretty печатает их в stderr
	stderr := cmd.ErrOrStderr()
	pretty := st.cfg.Output.Format == "pretty"
	failed := false
	prettyOpts := diagfmt.PrettyOpts{Color: st.useColor(stderr), ShowNotes: true}
	for _, u := range units {
		if u.Bag.Len() == 0 && u.Bag.Dropped() == 0 {
			continue
		}
		u.Bag.Sort()
		failed = failed || u.Bag.HasErrors()
		if !pretty {
			continue
		}
		if err := diagfmt.Pretty(stderr, u.Bag, u.FileSet, prettyOpts); err != nil {
			return err
		}
	}

	if err := writeTokens(cmd.OutOrStdout(), st.cfg.Output.Format, units); err != nil {
		return err
	}
	if st.timings {
		fmt.Fprint(stderr, timer.Summary())
	}
	if failed {
		return errUnitsFailed
	}
	return nil
}

func writeTokens(w io.Writer, format string, units []*driver.TokenizeResult) error {
	if format == "pretty" {
		for _, u := range units {
			if len(units) > 1 {
				if _, err := fmt.Fprintf(w, "== %s\n", displayPath(u)); err != nil {
					return err
				}
			}
			if err := diagfmt.FormatTokensPretty(w, u.Tokens, u.FileSet); err != nil {
				return err
			}
		}
		return nil
	}

	dump := make([]diagfmt.UnitTokens, 0, len(units))
	for _, u := range units {
		dump = append(dump, diagfmt.BuildUnitTokens(displayPath(u), u.Tokens, u.Bag))
	}
	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(w, dump)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(w, dump)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func displayPath(u *driver.TokenizeResult) string {
	return u.File.FormatPath("relative", u.FileSet.BaseDir())
}
