package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/g2sim/g2sim/audit"
)

var (
	auditRoot   string // Directory tree to scan
	auditConfig string // Optional YAML scanner config
	auditOut    string // Report output path
)

// auditCmd runs the sterility scan: every numeric literal outside the
// allow-list and the registry seed file is a violation.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Scan Go sources for ghost literals bypassing the registry",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := audit.DefaultConfig()
		if auditConfig != "" {
			loaded, err := audit.LoadConfig(auditConfig)
			if err != nil {
				logrus.Fatalf("Unable to read audit config: %v", err)
			}
			cfg = loaded
		}

		report, err := audit.Scan(auditRoot, cfg)
		if err != nil {
			logrus.Fatalf("Scan failed: %v", err)
		}

		if err := report.WriteJSON(auditOut); err != nil {
			logrus.Fatalf("Unable to write report: %v", err)
		}

		fmt.Println("=== Sterility Audit ===")
		fmt.Printf("Files scanned        : %d\n", report.FilesScanned)
		fmt.Printf("Violations           : %d\n", len(report.Violations))
		for _, v := range report.Violations {
			fmt.Printf("  %s:%d:%d  %s  (%s)\n", v.File, v.Line, v.Column, v.Literal, v.Kind)
		}

		if !report.Sterile {
			os.Exit(1)
		}
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditRoot, "root", ".", "Directory tree to scan")
	auditCmd.Flags().StringVar(&auditConfig, "config", "", "YAML scanner config (extends the default allow-list)")
	auditCmd.Flags().StringVar(&auditOut, "out", "AutoGenerated/sterility_report.json", "Report output path")
	rootCmd.AddCommand(auditCmd)
}
