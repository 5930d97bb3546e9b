package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kamusis/vecpair/internal/config"
	"github.com/kamusis/vecpair/internal/logger"
	"github.com/kamusis/vecpair/internal/pairs"
	"github.com/kamusis/vecpair/internal/report"
	"github.com/kamusis/vecpair/internal/vector"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	flagFormat    string
	flagPrecision int
	flagTop       int
	flagStrict    bool
	flagOutput    string
	flagDebug     bool
)

var rootCmd = &cobra.Command{
	Use:   "vecpair [input_file]",
	Short: "Rank vector pairs by cosine distance",
	Long: `vecpair reads one vector per line (whitespace-separated numbers),
computes the cosine distance of every pair and prints the pairs sorted
from closest to farthest.

Input is read from input_file when given, otherwise from standard input.

Example:
  vecpair vectors.txt
  printf '1 2 3\n4 5 6\n' | vecpair --format json`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true, // don't print usage on operational errors
	SilenceErrors: true, // Execute prints the error once
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: text, json or yaml (default from config, text)")
	rootCmd.Flags().IntVar(&flagPrecision, "precision", report.DefaultPrecision, "Decimals printed for distances and vector values")
	rootCmd.Flags().IntVar(&flagTop, "top", 0, "Only print the K closest pairs (0 = all)")
	rootCmd.Flags().BoolVar(&flagStrict, "strict", false, "Fail on any non-numeric token instead of ending the vector there")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the report to this file instead of stdout")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Print debug information to stderr")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if flagDebug {
		level = "debug"
	}
	if err := logger.Initialize(logger.Options{Level: level, File: cfg.LogFile, Console: cmd.ErrOrStderr()}); err != nil {
		return fmt.Errorf("cannot initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Get()

	start := time.Now()
	vs, err := readInput(cmd, args, cfg.Strict)
	if err != nil {
		return err
	}
	log.Debug("input parsed", zap.Int("vectors", len(vs)), zap.Duration("elapsed", time.Since(start)))

	if err := vector.Validate(vs); err != nil {
		return err
	}

	ps, err := pairs.Compute(vs)
	if err != nil {
		return err
	}
	pairs.Sort(ps)
	ps = pairs.Top(ps, cfg.Top)
	log.Debug("pairs ranked",
		zap.Int("dim", vs[0].Dim()),
		zap.Int("pairs", len(ps)),
		zap.Duration("elapsed", time.Since(start)))

	opts := report.Options{Format: cfg.Format, Precision: cfg.Precision}
	if flagOutput != "" {
		if err := report.WriteFile(flagOutput, vs, ps, opts); err != nil {
			return err
		}
		log.Debug("report written", zap.String("path", flagOutput))
		printOK(cmd.ErrOrStderr(), fmt.Sprintf("%d pair(s) written to %s", len(ps), flagOutput))
		return nil
	}
	return report.Write(cmd.OutOrStdout(), vs, ps, opts)
}

// resolveConfig layers explicitly set flags over config.Resolve.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = flagFormat
	}
	if flags.Changed("precision") {
		cfg.Precision = flagPrecision
	}
	if flags.Changed("top") {
		cfg.Top = flagTop
	}
	if flags.Changed("strict") {
		cfg.Strict = flagStrict
	}

	if !report.ValidFormat(cfg.Format) {
		return nil, fmt.Errorf("unsupported format %q (want text, json or yaml)", cfg.Format)
	}
	if cfg.Precision < 0 {
		return nil, fmt.Errorf("precision must not be negative, got %d", cfg.Precision)
	}
	if cfg.Top < 0 {
		return nil, fmt.Errorf("top must not be negative, got %d", cfg.Top)
	}
	return cfg, nil
}

// readInput parses vectors from args[0] or, without arguments, from stdin.
func readInput(cmd *cobra.Command, args []string, strict bool) ([]vector.Vector, error) {
	var in io.Reader
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("cannot open input file %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	} else {
		in = cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			printInfo(cmd.ErrOrStderr(), "reading vectors from stdin, one per line (Ctrl-D to finish)")
		}
	}

	stderr := cmd.ErrOrStderr()
	return vector.ReadVectors(in, vector.ParseOptions{
		Strict: strict,
		OnWarning: func(line int, msg string) {
			printWarn(stderr, fmt.Sprintf("line %d: %s", line, msg))
		},
	})
}
