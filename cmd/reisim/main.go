package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reisim/property-calculator/internal/breakeven"
	"github.com/reisim/property-calculator/internal/calculation"
	"github.com/reisim/property-calculator/internal/compare"
	"github.com/reisim/property-calculator/internal/config"
	"github.com/reisim/property-calculator/internal/domain"
	"github.com/reisim/property-calculator/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "reisim",
	Short: "Leveraged real-estate investment simulator",
	Long:  "Deterministic multi-year cash flow, tax and exit projection for leveraged property acquisitions",
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [input-file]",
	Short: "Run the multi-year projection for a property configuration",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoad(args[0])

		engine := calculation.NewCalculationEngine()
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(simpleCLILogger{})
		}
		result := engine.Simulate(cfg)

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		data, err := f.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(data)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare the baseline projection with the stress scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoad(args[0])
		cfg.Stress.Enabled = true
		cfg = config.ApplyEstimatedDefaults(cfg)

		engine := calculation.NewCalculationEngine()
		result := engine.Simulate(cfg)
		comparison := compare.NewMetricsCalculator().Compare(result)

		outputFormat, _ := cmd.Flags().GetString("format")
		var (
			data string
			err  error
		)
		switch outputFormat {
		case "csv":
			data, err = compare.FormatCSV(comparison)
		case "json":
			data, err = compare.FormatJSON(comparison)
		default:
			data = compare.FormatTable(comparison)
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(data)
	},
}

var breakEvenCmd = &cobra.Command{
	Use:   "break-even [input-file]",
	Short: "Solve for the break-even occupancy, rent or price",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoad(args[0])

		dimension, _ := cmd.Flags().GetString("dimension")
		target, _ := cmd.Flags().GetFloat64("target")

		solver := breakeven.NewSolver()
		result, err := solver.Solve(cmd.Context(), breakeven.Request{
			Config:           cfg,
			Dimension:        breakeven.Dimension(dimension),
			TargetCumulative: decimal.NewFromFloat(target),
		})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(breakeven.FormatResult(result))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Parse a configuration and report every normalization adjustment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		var cfg domain.Configuration
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatal(err)
		}
		notes := config.Normalize(&cfg)
		if len(notes) == 0 {
			fmt.Println("Configuration is valid, no adjustments needed")
			return
		}
		fmt.Printf("%d adjustment(s):\n", len(notes))
		for _, n := range notes {
			fmt.Printf("  - %s\n", n)
		}
	},
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults [input-file]",
	Short: "Print the configuration with every estimated default filled in",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoad(args[0])
		data, err := yaml.Marshal(cfg)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "reisim %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

// mustLoad parses, normalizes and fully defaults a configuration file.
func mustLoad(path string) *domain.Configuration {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func main() {
	simulateCmd.Flags().String("format", "console", "Output format: console, csv, json")
	simulateCmd.Flags().Bool("debug", false, "Enable debug logging")
	compareCmd.Flags().String("format", "table", "Output format: table, csv, json")
	breakEvenCmd.Flags().String("dimension", "occupancy", "Dimension to solve: occupancy, rent, price")
	breakEvenCmd.Flags().Float64("target", 0, "Target cumulative post-tax cash flow in yen")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(breakEvenCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
