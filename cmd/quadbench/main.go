// Package main provides the quadbench CLI, which runs the adaptive
// integrator over the problem catalog and reports accuracy and cost.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/Luna-Flow/calculus-numerical/problems"
	"github.com/Luna-Flow/calculus-numerical/quad"
	"github.com/Luna-Flow/calculus-numerical/quad/gk"
)

var (
	ruleName string
	epsabs   float64
	epsrel   float64
	limit    uint
	singular bool
	verbose  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quadbench",
		Short: "Benchmark the adaptive Gauss-Kronrod integrator on the problem catalog",
		RunE:  run,
	}

	rootCmd.Flags().StringVar(&ruleName, "rule", "GK21", "quadrature rule (GK15, GK21, GK31, GK41, GK51, GK61)")
	rootCmd.Flags().Float64Var(&epsabs, "epsabs", 1e-10, "absolute tolerance")
	rootCmd.Flags().Float64Var(&epsrel, "epsrel", 1e-10, "relative tolerance")
	rootCmd.Flags().UintVar(&limit, "limit", 100, "subdivision budget")
	rootCmd.Flags().BoolVar(&singular, "singular", false, "include the singular catalog")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func ruleByName(name string) (quad.Rule, error) {
	for m := gk.GKMethod(0); m < gk.GKMethod(gk.NumberOfGKMethods); m++ {
		r, err := gk.NewGK(m)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(r.Info().Name, name) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("unknown rule %q", name)
}

func run(_ *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{Level: level}),
	))

	rule, err := ruleByName(ruleName)
	if err != nil {
		return err
	}
	info := rule.Info()

	catalog := problems.Smooth()
	if singular {
		catalog = append(catalog, problems.Singular()...)
	}

	slog.Info("running catalog",
		"rule", info.Name,
		"epsabs", epsabs,
		"epsrel", epsrel,
		"limit", limit,
		"problems", len(catalog),
	)

	cfg := quad.Config{
		AbsoluteTolerance: epsabs,
		RelativeTolerance: epsrel,
		Limit:             limit,
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Problem", "Value", "True error", "Estimate", "Status", "Bisect", "Eval"})

	for _, p := range catalog {
		res, stat, err := quad.AdaptiveIntegrate(p.Fcn, rule, p.A, p.B, &cfg)
		if err != nil {
			slog.Error("integration rejected", "problem", p.Name, "err", err)
			continue
		}

		trueErr := math.Abs(res.Value - p.Exact)
		if res.Status != quad.StatusOK {
			slog.Warn("degraded outcome",
				"problem", p.Name,
				"status", res.Status.String(),
				"estimate", res.AbsError,
			)
		}
		slog.Debug("integrated",
			"problem", p.Name,
			"value", res.Value,
			"maxLevel", stat.MaximumLevel,
		)

		tbl.AppendRow(table.Row{
			p.Name,
			fmt.Sprintf("%.12g", res.Value),
			fmt.Sprintf("%.2e", trueErr),
			fmt.Sprintf("%.2e", res.AbsError),
			res.Status.String(),
			stat.Bisections,
			stat.Evaluations,
		})
	}

	tbl.Render()
	return nil
}
