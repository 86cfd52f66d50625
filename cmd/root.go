package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/g2sim/g2sim/registry"
	"github.com/g2sim/g2sim/sim"

	// Sector packages register their simulations via init().
	_ "github.com/g2sim/g2sim/sim/cosmology"
	_ "github.com/g2sim/g2sim/sim/particle"
	_ "github.com/g2sim/g2sim/sim/topology"
)

var (
	logLevel  string // Log verbosity level
	seedsFile string // Optional YAML seed override file
	strict    bool   // Exit nonzero when any claim fails validation
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "g2sim",
	Short: "Derives physical constants from the geometric seed integers",
}

// runCmd executes every registered derivation in dependency order and
// prints the validation report.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run all derivations and print the validation report",
	Run: func(cmd *cobra.Command, args []string) {
		reg := buildRegistry()

		results, err := sim.DefaultEngine().Run(reg)
		if err != nil {
			logrus.Fatalf("Engine pass failed: %v", err)
		}

		failed := printReport(results)
		logrus.Infof("Derivation complete: %d modules, %d parameters in registry", len(results), reg.Len())

		if strict && failed > 0 {
			os.Exit(1)
		}
	},
}

// buildRegistry sets up logging and constructs the registry, applying a
// seed override file when one is given.
func buildRegistry() *registry.Registry {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)

	if seedsFile == "" {
		return registry.New()
	}
	seeds, err := LoadSeeds(seedsFile)
	if err != nil {
		logrus.Fatalf("Unable to read seed overrides: %v", err)
	}
	logrus.Infof("Using seed overrides from %s (b3=%d)", seedsFile, seeds.B3)
	return registry.NewWithSeeds(seeds)
}

// printReport displays per-module validation results and returns the
// number of failing claims.
func printReport(results []sim.Result) int {
	failed := 0
	fmt.Println("=== Derivation Report ===")
	for _, r := range results {
		fmt.Printf("%-26s %s\n", r.Meta.ID, r.Meta.Title)
		for _, v := range r.Validations {
			verdict := "PASS"
			if !v.Validated {
				verdict = "FAIL"
				failed++
			}
			if v.Uncertainty > 0 {
				fmt.Printf("  %-28s %14.9g  ref %14.9g  %5.2f sigma  [%s] %s\n",
					v.ClaimID, v.Value, v.Reference, v.Sigma, v.Status, verdict)
			} else {
				fmt.Printf("  %-28s %14.9g  expect %11.9g  [%s] %s\n",
					v.ClaimID, v.Value, v.Reference, v.Status, verdict)
			}
		}
	}
	fmt.Printf("Failing claims       : %d\n", failed)
	return failed
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&seedsFile, "seeds", "", "YAML file overriding the default seed block")

	runCmd.Flags().BoolVar(&strict, "strict", false, "Exit nonzero when any claim fails validation")

	rootCmd.AddCommand(runCmd)
}
