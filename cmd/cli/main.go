package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"gogrubbs/adapters/excel"
	"gogrubbs/adapters/stats"
	"gogrubbs/app"
	"gogrubbs/domain/grubbs"
	"gogrubbs/internal"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gogrubbs",
		Short: "Grubbs' outlier test for numeric samples",
	}

	rootCmd.AddCommand(
		newStatisticCmd(),
		newCriticalCmd(),
		newDetectCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCalculator() *grubbs.Calculator {
	return grubbs.NewCalculator(stats.NewMontanaDescriptive(), stats.NewGonumQuantile())
}

func parseSample(args []string) ([]float64, error) {
	sample := make([]float64, 0, len(args))
	for _, arg := range args {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid observation %q: %w", arg, err)
		}
		sample = append(sample, value)
	}
	return sample, nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func newStatisticCmd() *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "statistic [observations...]",
		Short: "Compute the Grubbs G statistic for a sample",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := parseSample(args)
			if err != nil {
				return err
			}
			v, err := grubbs.ParseVariant(variant)
			if err != nil {
				return err
			}

			g, err := newCalculator().Statistic(sample, v)
			if err != nil {
				return err
			}
			return printJSON(map[string]interface{}{
				"statistic":   g,
				"variant":     v,
				"sample_size": len(sample),
			})
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "", "test variant: two-sided (default), lower, upper")
	return cmd
}

func newCriticalCmd() *cobra.Command {
	var alpha float64
	var n, tails int

	cmd := &cobra.Command{
		Use:   "critical",
		Short: "Compute the critical Grubbs value for alpha, n, and tails",
		RunE: func(cmd *cobra.Command, args []string) error {
			critical, err := newCalculator().CriticalValue(alpha, n, grubbs.Tails(tails))
			if err != nil {
				return err
			}
			return printJSON(map[string]interface{}{
				"critical_value": critical,
				"alpha":          alpha,
				"n":              n,
				"tails":          tails,
			})
		},
	}

	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "significance level in (0, 1)")
	cmd.Flags().IntVar(&n, "n", 0, "sample size (>= 3)")
	cmd.Flags().IntVar(&tails, "tails", 2, "1 or 2")
	_ = cmd.MarkFlagRequired("n")
	return cmd
}

func newDetectCmd() *cobra.Command {
	var variant, file, column string
	var alpha float64
	var tails int

	cmd := &cobra.Command{
		Use:   "detect [observations...]",
		Short: "Run the full Grubbs test on inline values or file columns",
		Long: `Run the full Grubbs test: statistic, critical value, and verdict.

Observations are given inline, or loaded from an .xlsx/.csv file with --file.
With --file every numeric column is tested unless --column narrows it down.

Example: gogrubbs detect 199.31 199.53 200.19 200.82 201.92 201.95 202.18 245.57 --variant upper --tails 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := grubbs.ParseVariant(variant)
			if err != nil {
				return err
			}
			params := grubbs.DetectionParams{Variant: v, Alpha: alpha, Tails: grubbs.Tails(tails)}

			descriptive := stats.NewMontanaDescriptive()
			calc := grubbs.NewCalculator(descriptive, stats.NewGonumQuantile())
			service := app.NewDetectionService(calc, descriptive, nil, internal.NewDefaultLogger())

			if file == "" {
				if len(args) < grubbs.MinSampleSize {
					return fmt.Errorf("need at least %d observations or --file", grubbs.MinSampleSize)
				}
				sample, err := parseSample(args)
				if err != nil {
					return err
				}
				report, err := service.Detect(cmd.Context(), sample, params)
				if err != nil {
					return err
				}
				return printJSON(report)
			}

			return runDetectFile(cmd.Context(), service, file, column, params)
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "", "test variant: two-sided (default), lower, upper")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "significance level in (0, 1)")
	cmd.Flags().IntVar(&tails, "tails", 2, "1 or 2")
	cmd.Flags().StringVar(&file, "file", "", "path to an .xlsx or .csv file of samples")
	cmd.Flags().StringVar(&column, "column", "", "restrict --file detection to one column")
	return cmd
}

func runDetectFile(ctx context.Context, service *app.DetectionService, file, column string, params grubbs.DetectionParams) error {
	columns, err := excel.NewSampleReader(file).ReadColumns()
	if err != nil {
		return err
	}

	if column != "" {
		sample, ok := columns[column]
		if !ok {
			return fmt.Errorf("column %q not found in %s", column, file)
		}
		columns = map[string][]float64{column: sample}
	}

	reports, err := service.DetectBatch(ctx, columns, params)
	if err != nil {
		return err
	}
	return printJSON(reports)
}
