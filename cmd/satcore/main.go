// Command satcore is the interactive front end for the satcore DPLL
// solver: a cobra command tree selecting plain SAT solving or one of the
// graph-decision-problem reductions, reading one instance (a DIMACS CNF
// for solve, a plain-text edge list for the graph subcommands) from a file
// or standard input and printing the result.
//
// The CLI is an external collaborator: it never touches package dpll's
// internals directly, only the Solve/SolveParallel entry points, and it
// is the only place in this repository allowed to read flags or write to
// the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/satcore/satcore/cnf"
	"github.com/satcore/satcore/dimacs"
	"github.com/satcore/satcore/dpll"
	"github.com/satcore/satcore/reduction"
	"github.com/satcore/satcore/result"
)

var (
	parallel bool
	workers  int
	logLevel string
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "satcore",
		Short: "A DPLL SAT solver with a shared-work parallel coordinator",
		Long: `satcore decides propositional satisfiability of CNF formulas using the
Davis-Putnam-Logemann-Loveland procedure, optionally sharing branch
exploration across a worker pool.

Each subcommand reads one instance, either from a named file or from
standard input. solve reads a DIMACS CNF instance and prints either
"Unsatisfiable." or one "name: true|false" line per variable; the graph
subcommands read a plain-text edge list ("u v" per line) and print either
"Unsatisfiable." or the independent set, coloring, or path found.`,
	}
	root.PersistentFlags().BoolVar(&parallel, "parallel", false, "solve using the worker-pool coordinator instead of the sequential engine")
	root.PersistentFlags().IntVar(&workers, "workers", 0, "worker count for --parallel (0 selects the number of logical CPUs)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newIndependentSetCmd())
	root.AddCommand(newColorCmd())
	root.AddCommand(newHamiltonianCmd())
	return root
}

func newLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "satcore",
		Level: hclog.LevelFromString(logLevel),
	})
}

func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}

func solve(f *cnf.Formula) cnf.Result {
	if !parallel {
		return dpll.Solve(f)
	}
	return dpll.SolveParallel(context.Background(), f, workers, newLogger())
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [input.cnf]",
		Short: "Decide satisfiability of a DIMACS CNF instance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openInput(args)
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer r.Close()

			f, err := dimacs.Parse(r)
			if err != nil {
				return fmt.Errorf("parsing DIMACS input: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Format(solve(f)))
			return nil
		},
	}
}

func newIndependentSetCmd() *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "independent-set [graph.txt]",
		Short: "Decide whether a graph has an independent set of size >= k",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openInput(args)
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer r.Close()

			g, err := parseGraph(r)
			if err != nil {
				return fmt.Errorf("parsing graph: %w", err)
			}

			f := reduction.IndependentSet(g, k)
			res := solve(f)
			if !res.Sat {
				fmt.Fprintln(cmd.OutOrStdout(), result.Unsatisfiable)
				return nil
			}
			selected := reduction.InterpretIndependentSet(g, res.Model)
			fmt.Fprintf(cmd.OutOrStdout(), "independent set: %v\n", selected)
			return nil
		},
	}
	cmd.Flags().IntVar(&k, "k", 1, "minimum independent set size")
	return cmd
}

func newColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color [graph.txt]",
		Short: "Decide whether a graph is 3-colorable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openInput(args)
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer r.Close()

			g, err := parseGraph(r)
			if err != nil {
				return fmt.Errorf("parsing graph: %w", err)
			}

			f := reduction.ThreeColoring(g)
			res := solve(f)
			if !res.Sat {
				fmt.Fprintln(cmd.OutOrStdout(), result.Unsatisfiable)
				return nil
			}
			colors := reduction.InterpretThreeColoring(g, res.Model)
			for _, v := range g.Vertices {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: color %d\n", v, colors[v])
			}
			return nil
		},
	}
}

func newHamiltonianCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hamiltonian [graph.txt]",
		Short: "Decide whether a graph has a Hamiltonian path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openInput(args)
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer r.Close()

			g, err := parseGraph(r)
			if err != nil {
				return fmt.Errorf("parsing graph: %w", err)
			}

			f := reduction.HamiltonianPath(g)
			res := solve(f)
			if !res.Sat {
				fmt.Fprintln(cmd.OutOrStdout(), result.Unsatisfiable)
				return nil
			}
			order := reduction.InterpretHamiltonianPath(g, res.Model)
			fmt.Fprintf(cmd.OutOrStdout(), "path: %v\n", order)
			return nil
		},
	}
}
