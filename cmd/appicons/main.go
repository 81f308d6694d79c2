package main

import (
	"fmt"
	"os"

	"github.com/MD5Visual/QTask/internal/ir"
	"github.com/MD5Visual/QTask/internal/png"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "appicons",
	Short: "Generate launcher icons and Windows ICO files from a PNG logo",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readPNG loads and decodes an input file.
func readPNG(path string) (*ir.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	img, err := png.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
