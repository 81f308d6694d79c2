package main

import (
	"fmt"

	"github.com/MD5Visual/QTask/internal/pipeline"
	"github.com/MD5Visual/QTask/internal/png"
	"github.com/spf13/cobra"
)

var resizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Resize a PNG to a single square size",
	RunE:  runResize,
}

func init() {
	resizeCmd.Flags().StringP("input", "i", "", "Input RGBA PNG")
	resizeCmd.Flags().StringP("output", "o", "", "Output PNG")
	resizeCmd.Flags().IntP("size", "s", 0, "Edge length in pixels")
	resizeCmd.Flags().String("level", "best", "PNG compression (best, default, speed, none)")
	resizeCmd.MarkFlagRequired("input")
	resizeCmd.MarkFlagRequired("output")
	resizeCmd.MarkFlagRequired("size")
	rootCmd.AddCommand(resizeCmd)
}

func runResize(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	size, _ := cmd.Flags().GetInt("size")
	levelStr, _ := cmd.Flags().GetString("level")

	level, err := png.ParseCompressionLevel(levelStr)
	if err != nil {
		return err
	}

	src, err := readPNG(inputPath)
	if err != nil {
		return err
	}

	encoded, err := pipeline.RenderPNG(src, size, level)
	if err != nil {
		return err
	}
	if err := pipeline.WriteFile(outputPath, encoded); err != nil {
		return err
	}

	fmt.Printf("Resized %dx%d → %dx%d\n", src.Width, src.Height, size, size)
	fmt.Printf("Output: %s (%d bytes)\n", outputPath, len(encoded))
	return nil
}
