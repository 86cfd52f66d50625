package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/g2sim/g2sim/docsync"
	"github.com/g2sim/g2sim/sim"
)

var docsOutDir string // Output directory for generated artifacts

// docsCmd runs the engine and regenerates FORMULAS.md and the JSON
// registry snapshot.
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Regenerate FORMULAS.md and AutoGenerated/named_constants.json",
	Run: func(cmd *cobra.Command, args []string) {
		reg := buildRegistry()

		e := sim.DefaultEngine()
		ordered, err := e.Order()
		if err != nil {
			logrus.Fatalf("Ordering failed: %v", err)
		}
		results, err := e.Run(reg)
		if err != nil {
			logrus.Fatalf("Engine pass failed: %v", err)
		}

		if err := docsync.Sync(docsOutDir, reg, ordered, results); err != nil {
			logrus.Fatalf("Document generation failed: %v", err)
		}
		logrus.Infof("Wrote %s and %s under %s", docsync.FormulasFile, docsync.ConstantsFile, docsOutDir)
	},
}

func init() {
	docsCmd.Flags().StringVar(&docsOutDir, "out", ".", "Directory for generated artifacts")
	rootCmd.AddCommand(docsCmd)
}
