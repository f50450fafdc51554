package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/comicink/pagestamp/internal/detect"
)

var zonesCmd = &cobra.Command{
	Use:   "zones [page...]",
	Short: "Propose avoid zones by detecting text blocks (speech bubbles)",
	Long: `zones runs text-block detection on the given pages and prints an
override-JSON object with an "avoid" list per page, keyed by base
filename. Redirect it to a file, edit by hand as needed, and feed it
back through --avoid-json.

Requires a cgo build with Tesseract installed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runZones,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pagestamp %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(zonesCmd)
	rootCmd.AddCommand(versionCmd)

	zonesCmd.Flags().Float64("min-confidence", 0.5, "minimum detection confidence (0-1)")
	zonesCmd.Flags().Int("pad", 8, "padding in pixels added around each detected block")
}

func runZones(cmd *cobra.Command, args []string) error {
	if !detect.Available() {
		return fmt.Errorf("text detection requires a cgo build with Tesseract installed")
	}

	minConf, _ := cmd.Flags().GetFloat64("min-confidence")
	pad, _ := cmd.Flags().GetInt("pad")

	table := make(map[string]map[string][][]int, len(args))
	for _, path := range args {
		zones, err := detect.ProposeZones(path, minConf, pad)
		if err != nil {
			return fmt.Errorf("detecting zones in %s: %w", path, err)
		}
		avoid := make([][]int, 0, len(zones))
		for _, z := range zones {
			avoid = append(avoid, []int{z.X, z.Y, z.W, z.H})
		}
		table[filepath.Base(path)] = map[string][][]int{"avoid": avoid}
	}

	out, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
