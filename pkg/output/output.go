package output

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// WritePPM writes the frame as a plain-text P3 image, one "r g b" line per pixel
func WritePPM(w io.Writer, f *renderer.Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return err
	}
	for _, px := range f.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", px.R, px.G, px.B); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WritePNG encodes the frame as an 8-bit PNG
func WritePNG(w io.Writer, f *renderer.Frame) error {
	return png.Encode(w, f.Image())
}

// WriteBMP encodes the frame as an uncompressed 24-bit BMP
func WriteBMP(w io.Writer, f *renderer.Frame) error {
	return bmp.Encode(w, f.Image())
}

// WriteTIFF encodes the frame as a deflate-compressed TIFF
func WriteTIFF(w io.Writer, f *renderer.Frame) error {
	return tiff.Encode(w, f.Image(), &tiff.Options{Compression: tiff.Deflate})
}

// WriteFile saves the frame, choosing the format from the extension
// (.ppm, .png, .bmp, .tif or .tiff).
// Parent directories are created as needed.
func WriteFile(path string, f *renderer.Frame) error {
	var write func(io.Writer, *renderer.Frame) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		write = WritePNG
	case ".ppm":
		write = WritePPM
	case ".bmp":
		write = WriteBMP
	case ".tif", ".tiff":
		write = WriteTIFF
	default:
		return fmt.Errorf("unsupported image format %q", filepath.Ext(path))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	if err := write(file, f); err != nil {
		file.Close()
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return file.Close()
}
