package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/assets"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List the loaded sprites",
	Long: `Shows every sprite in the table after the configured sprite sheet
was applied, with its size in logical pixels.`,
	Args: cobra.NoArgs,
	Run:  runSprites,
}

func runSprites(_ *cobra.Command, _ []string) {
	loadConfig()
	sprites := assets.List()

	if len(sprites) == 0 {
		fmt.Println("No sprites loaded.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sprites {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	// Print header
	fmt.Printf("  %-*s  %7s  %5s\n", maxIDLen, "ID", "Size", "Scale")
	fmt.Printf("  %-*s  %7s  %5s\n", maxIDLen, "--", "----", "-----")

	for _, s := range sprites {
		fmt.Printf("  %-*s  %7s  %5d\n", maxIDLen, s.ID, fmt.Sprintf("%dx%d", s.Width, s.Height), s.Scale)
	}
}
