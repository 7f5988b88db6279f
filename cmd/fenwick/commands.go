package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// app carries the state shared by the command tree of one invocation.
type app struct {
	cfg        Config
	configPath string
	log        *slog.Logger
	q          querier
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "fenwick",
		Short: "Answer prefix sum and bound queries over a sequence of numbers",
		Long: `fenwick loads a sequence of numbers into a Fenwick tree and answers
element, sum and bound queries on it. Values come from --values,
--file, or a YAML config file given with --config.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.cfg.Values, "values", "", "values separated by commas or spaces")
	flags.StringVar(&a.cfg.File, "file", "", "file with values, '#' starts a comment")
	flags.BoolVar(&a.cfg.Float, "float", false, "parse values as float64 instead of int64")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "debug, info, warn or error")
	flags.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "text or json")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "at INDEX",
			Short: "Print the element at INDEX",
			Args:  cobra.ExactArgs(1),
			RunE: a.print(func(args []string) (string, error) {
				return a.q.at(args[0])
			}),
		},
		&cobra.Command{
			Use:   "sum [FIRST [LAST]]",
			Short: "Print the total, the prefix sum up to FIRST, or the sum over [FIRST, LAST]",
			Args:  cobra.MaximumNArgs(2),
			RunE: a.print(func(args []string) (string, error) {
				return a.q.sum(args)
			}),
		},
		&cobra.Command{
			Use:   "lower-bound VALUE",
			Short: "Print the first index whose prefix sum is at least VALUE",
			Args:  cobra.ExactArgs(1),
			RunE: a.print(func(args []string) (string, error) {
				return a.q.lowerBound(args[0])
			}),
		},
		&cobra.Command{
			Use:   "upper-bound VALUE",
			Short: "Print the first index whose prefix sum exceeds VALUE",
			Args:  cobra.ExactArgs(1),
			RunE: a.print(func(args []string) (string, error) {
				return a.q.upperBound(args[0])
			}),
		},
		&cobra.Command{
			Use:   "values",
			Short: "Print all elements",
			Args:  cobra.NoArgs,
			RunE: a.print(func([]string) (string, error) {
				return strings.Join(a.q.values(), " "), nil
			}),
		},
		a.sampleCmd(),
	)
	return rootCmd
}

func (a *app) sampleCmd() *cobra.Command {
	var (
		count int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print random indices drawn with probability proportional to their values",
		Args:  cobra.NoArgs,
		RunE: a.print(func([]string) (string, error) {
			if count < 0 {
				return "", fmt.Errorf("--count must not be negative, got %d", count)
			}
			picks, err := a.q.sample(count, seed)
			if err != nil {
				return "", err
			}
			out := make([]string, len(picks))
			for i, p := range picks {
				out[i] = fmt.Sprint(p)
			}
			return strings.Join(out, " "), nil
		}),
	}
	cmd.Flags().IntVar(&count, "count", 1, "number of indices to draw")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for reproducible draws, 0 for the global source")
	return cmd
}

// print adapts a query to a cobra RunE that writes its result as a line.
func (a *app) print(query func(args []string) (string, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		out, err := query(args)
		if err != nil {
			a.log.Error("query failed", "command", cmd.Name(), "args", args, "error", err)
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	}
}

// setup merges the config file, builds the logger and loads the values.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configPath != "" {
		file, err := loadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg.mergeFile(cmd, file)
	}

	log, err := newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.LogFormat)
	if err != nil {
		return err
	}
	a.log = log

	var tokens []string
	switch {
	case a.cfg.Values != "" && a.cfg.File != "":
		return fmt.Errorf("--values and --file are mutually exclusive")
	case a.cfg.File != "":
		if tokens, err = readNumbersFile(a.cfg.File); err != nil {
			return err
		}
	default:
		tokens = splitNumbers(a.cfg.Values)
	}

	if a.cfg.Float {
		a.q, err = newSession(tokens, parseFloat, a.log)
	} else {
		a.q, err = newSession(tokens, parseInt, a.log)
	}
	if err != nil {
		return err
	}
	a.log.Info("values loaded", "count", a.q.size(), "float", a.cfg.Float)
	return nil
}
