package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/MD5Visual/QTask/internal/ico"
	"github.com/MD5Visual/QTask/internal/png"
	"github.com/spf13/cobra"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect a PNG header or an ICO directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("File size:  %d bytes (%.1f KB)\n", len(data), float64(len(data))/1024)

	if bytes.HasPrefix(data, pngSignature) {
		return identifyPNG(path, data)
	}
	return identifyICO(path, data)
}

func identifyPNG(path string, data []byte) error {
	info, err := png.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	fmt.Printf("Format:     PNG\n")
	fmt.Printf("Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Printf("Color type: %s, %d-bit\n", info.ColorType, info.BitDepth)
	fmt.Printf("Interlaced: %t\n", info.Interlace)
	fmt.Printf("Chunks:     %s\n", strings.Join(info.Chunks, " "))
	fmt.Printf("IDAT:       %d chunks, %d bytes\n", info.IDATCount, info.IDATBytes)
	if info.Unsupported != nil {
		fmt.Printf("Decodable:  no (%v)\n", info.Unsupported)
		return nil
	}

	img, err := png.Decode(data)
	if err != nil {
		fmt.Printf("Decodable:  no (%v)\n", err)
		return nil
	}
	fmt.Println("Decodable:  yes")
	// App Store icons must not carry transparency.
	fmt.Printf("Opaque:     %t\n", img.NRGBA().Opaque())
	return nil
}

func identifyICO(path string, data []byte) error {
	dir, err := ico.ReadDirectory(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	fmt.Printf("Format:     ICO\n")
	fmt.Printf("Images:     %d\n", len(dir.Entries))
	for i, e := range dir.Entries {
		kind := "BMP"
		if dir.IsPNG(data, i) {
			kind = "PNG"
		}
		fmt.Printf("  [%d] %dx%d, %d bpp, %s, %d bytes at offset %d\n",
			i, e.GetWidth(), e.GetHeight(), e.BitsPerPixel, kind, e.Size, e.Offset)
	}
	return nil
}
