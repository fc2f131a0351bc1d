// Command jbmcheck verifies the transcendental kernels against the
// standard library and reports their speed and range limits.
//
// Usage:
//
//	jbmcheck check                          # every function, type and width
//	jbmcheck check --funcs exp,log --type f32 --width 8
//	jbmcheck bench --funcs sin,cos
//	jbmcheck limits
//
// check prints one line per function, precision and lane width:
//
//	PASS exp/f64/x4 k=2 iterations=10,000
//
// where k is the smallest power of two such that every sample was within k
// machine epsilons of the reference, relatively or absolutely. The first
// sample needing k of 1024 or more is reported as FAIL and the command
// exits with status 1.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/workerpool"
)

// options holds the flags shared by all subcommands.
type options struct {
	funcs    []string
	types    string
	width    int
	samples  int
	seed     uint64
	parallel int
	verbose  bool
}

// precisions returns the selected precisions as "is float32" flags, f32
// first.
func (o *options) precisions() []bool {
	switch o.types {
	case "f32":
		return []bool{true}
	case "f64":
		return []bool{false}
	}
	return []bool{true, false}
}

func (o *options) validate() error {
	switch {
	case o.types != "f32" && o.types != "f64" && o.types != "all":
		return fmt.Errorf("--type must be f32, f64 or all, not %q", o.types)
	case o.samples < 1:
		return fmt.Errorf("--samples must be positive, not %d", o.samples)
	case o.width < 0:
		return fmt.Errorf("--width must not be negative, not %d", o.width)
	}
	if o.parallel < 1 {
		o.parallel = runtime.GOMAXPROCS(0)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "jbmcheck",
		Short:         "Check accuracy, speed and range limits of the jbm kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			if opts.verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "dispatch: %s\n", hwy.Describe())
			}
			return nil
		},
	}
	f := root.PersistentFlags()
	f.StringSliceVar(&opts.funcs, "funcs", nil, "Comma-separated functions to run (default: all)")
	f.StringVar(&opts.types, "type", "all", "Precision: f32, f64 or all")
	f.IntVar(&opts.width, "width", 0, "Lane width to check, 1 for scalar only (default: all widths)")
	f.IntVar(&opts.samples, "samples", 10000, "Arguments per function")
	f.Uint64Var(&opts.seed, "seed", 1, "Seed for the random arguments")
	f.IntVar(&opts.parallel, "parallel", 0, "Concurrent checks (default: GOMAXPROCS)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Print progress to stderr")

	root.AddCommand(
		&cobra.Command{
			Use:   "check",
			Short: "Compare every function to the standard library",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				fns, err := selectFunctions(registry, opts.funcs)
				if err != nil {
					return err
				}
				return runCheck(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), fns, opts)
			},
		},
		&cobra.Command{
			Use:   "bench",
			Short: "Time the scalar and lane-group forms",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				fns, err := selectFunctions(registry, opts.funcs)
				if err != nil {
					return err
				}
				return runBench(cmd.Context(), cmd.OutOrStdout(), fns, opts)
			},
		},
		&cobra.Command{
			Use:   "limits",
			Short: "Locate overflow, underflow and saturation points by bisection",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				fns, err := selectFunctions(registry, opts.funcs)
				if err != nil {
					return err
				}
				pool := workerpool.New(opts.parallel)
				defer pool.Close()
				return runLimits(cmd.OutOrStdout(), pool, fns, opts)
			},
		},
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
