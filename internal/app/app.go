// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"chromsplit/internal/chrom"
	"chromsplit/internal/cli"
	"chromsplit/internal/clibase"
	"chromsplit/internal/cmdutil"
	"chromsplit/internal/config"
	"chromsplit/internal/jsonutil"
	"chromsplit/internal/splitter"
	"chromsplit/internal/summary"
	"chromsplit/internal/version"
	"chromsplit/internal/writers"
)

// Exit codes
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitOutput      = 3
	ExitInterrupted = 130
)

// exitError carries a non-usage failure out of a cobra RunE.
// Anything else cobra returns is treated as a usage error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func failure(err error) error {
	if errors.Is(err, context.Canceled) {
		return &exitError{code: ExitInterrupted, err: err}
	}
	return &exitError{code: ExitFailure, err: err}
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	root := newRootCmd(stdout)
	root.SetOut(outw)
	root.SetErr(stderr)
	root.SetArgs(argv)
	err := root.ExecuteContext(parent)

	if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitOutput
	}
	if err == nil {
		return ExitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.code == ExitOutput && writers.IsBrokenPipe(ee.err) {
			return ExitOK
		}
		_, _ = fmt.Fprintf(stderr, "chromsplit: %v\n", ee.err)
		return ee.code
	}
	_, _ = fmt.Fprintf(stderr, "chromsplit: %v\n", err)
	_, _ = fmt.Fprintln(stderr, "Run 'chromsplit --help' for usage.")
	return ExitUsage
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "chromsplit [flags] <input.fa|->",
		Short:         "Split a genome FASTA into canonical chromosome files",
		Long:          clibase.Long("chromsplit"),
		Example:       clibase.SplitExamples,
		Args:          cobra.ExactArgs(1),
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runSplit,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("chromsplit version {{.Version}}\n")
	cli.RegisterSplitFlags(root.Flags())

	split := &cobra.Command{
		Use:     "split [flags] <input.fa|->",
		Short:   "Write one <chrom>.fa per canonical chromosome (default command)",
		Example: clibase.SplitExamples,
		Args:    cobra.ExactArgs(1),
		RunE:    runSplit,
	}
	cli.RegisterSplitFlags(split.Flags())

	root.AddCommand(split, newSummaryCmd(stdout), newChromosomesCmd(), newVersionCmd())
	return root
}

func runSplit(cmd *cobra.Command, args []string) error {
	v, err := config.Load(cmd.Flags(), config.DotEnv)
	if err != nil {
		return err
	}
	opts, err := cli.FromViper(v, args)
	if err != nil {
		return err
	}
	logger, err := cmdutil.NewLogger(cmd.ErrOrStderr(), opts.LogLevel, opts.Quiet)
	if err != nil {
		return err
	}

	var sink writers.Sink
	if opts.DryRun {
		sink = &writers.Discard{}
	} else {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return failure(err)
		}
		sink = writers.NewRotator(opts.OutDir)
	}

	sp := splitter.New(sink, splitter.Options{
		LegacyPlaceholder: opts.LegacyPlaceholder,
		Logger:            logger,
	})
	st, err := sp.SplitFile(cmd.Context(), opts.Input)
	if err != nil {
		return failure(err)
	}

	if st.Selected == 0 {
		logger.Warn("no canonical chromosome headers found", "input", opts.Input, "headers", st.Headers)
	}
	logger.Info("done",
		"input", opts.Input,
		"out_dir", opts.OutDir,
		"chromosomes", st.Selected,
		"skipped", st.Skipped,
		"bytes", st.Bytes,
		"dry_run", opts.DryRun,
	)
	if opts.Report != "" {
		return writeReport(cmd.OutOrStdout(), opts, st)
	}
	return nil
}

type runReport struct {
	Input  string `json:"input"`
	OutDir string `json:"out_dir"`
	DryRun bool   `json:"dry_run"`
	splitter.Stats
}

func writeReport(stdout io.Writer, opts cli.Options, st splitter.Stats) error {
	r := runReport{Input: opts.Input, OutDir: opts.OutDir, DryRun: opts.DryRun, Stats: st}
	if opts.Report == "-" {
		if err := jsonutil.EncodePretty(stdout, r); err != nil {
			return &exitError{code: ExitOutput, err: err}
		}
		return nil
	}
	if err := jsonutil.WriteFile(opts.Report, r); err != nil {
		return failure(fmt.Errorf("report: %w", err))
	}
	return nil
}

func newSummaryCmd(stdout io.Writer) *cobra.Command {
	var o cli.SummaryOptions
	cmd := &cobra.Command{
		Use:   "summary [dir]",
		Short: "Report length and GC of the chromosome files in dir (default .)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.Dir = "."
			if len(args) == 1 {
				o.Dir = args[0]
			}
			if err := o.Validate(); err != nil {
				return err
			}
			list, err := summary.Collect(o.Dir)
			if err != nil {
				return failure(err)
			}
			so := summary.Options{Missing: o.Missing, Color: useColor(stdout)}
			write := summary.WriteText
			if o.Format == cli.FormatJSON {
				write = summary.WriteJSON
			}
			if err := write(cmd.OutOrStdout(), list, so); err != nil {
				return &exitError{code: ExitOutput, err: err}
			}
			return nil
		},
	}
	cli.RegisterSummaryFlags(cmd.Flags(), &o)
	return cmd
}

func newChromosomesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chromosomes",
		Short: "List the canonical chromosome names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, n := range chrom.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), n); err != nil {
					return &exitError{code: ExitOutput, err: err}
				}
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "chromsplit version %s\n", version.Version)
			return err
		},
	}
}

// useColor is true only when writing straight to a terminal stdout.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && f == os.Stdout && !color.NoColor
}
