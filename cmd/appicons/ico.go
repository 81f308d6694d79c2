package main

import (
	"fmt"

	"github.com/MD5Visual/QTask/internal/pipeline"
	"github.com/MD5Visual/QTask/internal/png"
	"github.com/spf13/cobra"
)

var icoCmd = &cobra.Command{
	Use:   "ico",
	Short: "Pack resized copies of a PNG into a Windows ICO file",
	RunE:  runICO,
}

func init() {
	icoCmd.Flags().StringP("input", "i", "", "Input RGBA PNG")
	icoCmd.Flags().StringP("output", "o", "", "Output ICO file")
	icoCmd.Flags().IntSlice("sizes", []int{16, 32, 48, 64, 128, 256}, "Frame sizes, in directory order (1-256)")
	icoCmd.Flags().String("level", "best", "PNG compression (best, default, speed, none)")
	icoCmd.MarkFlagRequired("input")
	icoCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(icoCmd)
}

func runICO(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	sizes, _ := cmd.Flags().GetIntSlice("sizes")
	levelStr, _ := cmd.Flags().GetString("level")

	level, err := png.ParseCompressionLevel(levelStr)
	if err != nil {
		return err
	}

	src, err := readPNG(inputPath)
	if err != nil {
		return err
	}

	data, err := pipeline.BuildICO(src, sizes, level)
	if err != nil {
		return fmt.Errorf("building ico: %w", err)
	}
	if err := pipeline.WriteFile(outputPath, data); err != nil {
		return err
	}

	fmt.Printf("Packed %d images %v → %s (%d bytes)\n", len(sizes), sizes, outputPath, len(data))
	return nil
}
