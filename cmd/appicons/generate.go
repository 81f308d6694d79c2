package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MD5Visual/QTask/internal/pipeline"
	"github.com/MD5Visual/QTask/internal/png"
	"github.com/MD5Visual/QTask/internal/targets"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write every Android, iOS, web and Windows icon for a project",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("input", "i", "", "Source RGBA PNG (square works best)")
	generateCmd.Flags().StringP("root", "r", ".", "Project root the target paths are relative to")
	generateCmd.Flags().StringP("targets", "t", "", "YAML target definition (default: built-in tables)")
	generateCmd.Flags().Int("workers", 0, "Concurrent resize jobs (0 = number of CPUs)")
	generateCmd.Flags().String("level", "best", "PNG compression (best, default, speed, none)")
	generateCmd.Flags().Bool("skip-crc", false, "Accept a source PNG with bad chunk checksums")
	generateCmd.Flags().BoolP("verbose", "v", false, "List every file written")
	generateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	root, _ := cmd.Flags().GetString("root")
	targetsPath, _ := cmd.Flags().GetString("targets")
	workers, _ := cmd.Flags().GetInt("workers")
	levelStr, _ := cmd.Flags().GetString("level")
	skipCRC, _ := cmd.Flags().GetBool("skip-crc")
	verbose, _ := cmd.Flags().GetBool("verbose")

	level, err := png.ParseCompressionLevel(levelStr)
	if err != nil {
		return err
	}

	set, err := targets.Load(targetsPath)
	if err != nil {
		return err
	}

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := pipeline.Run(inputData, root, set, pipeline.Options{
		Workers:     workers,
		Compression: level,
		SkipCRC:     skipCRC,
	})
	if err != nil && !errors.Is(err, pipeline.ErrPartialFailure) {
		return fmt.Errorf("generate: %w", err)
	}

	if result.SrcWidth != result.SrcHeight {
		fmt.Printf("Warning: source is %dx%d, icons will be stretched to squares\n", result.SrcWidth, result.SrcHeight)
	}
	if verbose {
		for _, out := range result.Written {
			if out.Size > 0 {
				fmt.Printf("  %4dpx  %s (%d bytes)\n", out.Size, out.Path, out.Bytes)
			} else {
				fmt.Printf("  ico     %s (%d bytes)\n", out.Path, out.Bytes)
			}
		}
	}
	for _, f := range result.Failures {
		fmt.Fprintf(os.Stderr, "failed: %s: %v\n", f.Path, f.Err)
	}
	fmt.Printf("Generated %d icons from %s (%dx%d)\n", len(result.Written), inputPath, result.SrcWidth, result.SrcHeight)

	return err
}
