package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/LipeHeitz/pricing-k2/internal/calculation"
	"github.com/LipeHeitz/pricing-k2/internal/config"
	"github.com/LipeHeitz/pricing-k2/internal/output"
	"github.com/spf13/cobra"
)

var (
	configPath string
	formatName string
	outputPath string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:   "pricing-k2",
		Short: "Tax-aware installment pricing for loan and lease structures",
		Long: "pricing-k2 finds the optimal gross installment payment that reproduces a\n" +
			"target net IRR after PIS/COFINS and quarterly IRPJ/CSSL, and derives the\n" +
			"investor-side recovery view from the resulting schedule.",
	}

	simulate := &cobra.Command{
		Use:   "simulate",
		Short: "Run a pricing simulation from a YAML input file",
		RunE:  runSimulate,
	}
	simulate.Flags().StringVarP(&configPath, "config", "c", "simulation.yaml", "simulation input file")
	simulate.Flags().StringVarP(&formatName, "format", "f", "console", fmt.Sprintf("output format: %v", output.AvailableFormatterNames()))
	simulate.Flags().StringVarP(&outputPath, "output", "o", "", "write to this file instead of stdout (pdf always writes a file)")
	simulate.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	example := &cobra.Command{
		Use:   "example",
		Short: "Print a ready-to-edit example input file",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(config.ExampleYAML)
		},
	}

	root.AddCommand(simulate, example)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulate(cmd *cobra.Command, args []string) error {
	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q, available: %v", formatName, output.AvailableFormatterNames())
	}

	params, err := config.NewInputParser().LoadFromFile(configPath)
	if err != nil {
		return err
	}

	engine := calculation.NewPricingEngine()
	if verbose {
		engine.SetLogger(stderrLogger{})
	}

	report, err := engine.Simulate(context.Background(), params)
	if err != nil {
		return err
	}

	if outputPath == "" && formatter.Name() == "pdf" {
		// Binary output never goes to the terminal.
		filename, err := output.WriteFormatted(formatter, report)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", filename)
		return nil
	}

	data, err := formatter.Format(report)
	if err != nil {
		return err
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputPath)
		return nil
	}
	cmd.OutOrStdout().Write(data)
	return nil
}

// stderrLogger adapts the standard logger to the engine's interface.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { log.Printf("DEBUG "+format, args...) }
func (stderrLogger) Infof(format string, args ...any)  { log.Printf("INFO  "+format, args...) }
func (stderrLogger) Warnf(format string, args ...any)  { log.Printf("WARN  "+format, args...) }
func (stderrLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }
