// Package watermark stamps a semi-transparent logo onto the raw asset
// images, producing the processed set the server prefers at runtime.
// It is an offline step, run via the CLI before deployment.
package watermark

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Options controls a watermarking run
type Options struct {
	// InputDir holds per-side subdirectories of raw images
	InputDir string
	// OutputDir receives the stamped images, mirroring the input layout
	OutputDir string
	// LogoPath is the watermark image
	LogoPath string
	// Opacity of the stamped logo, 0..1
	Opacity float64
	// Scale is the logo width as a fraction of the target image width
	Scale float64
	// Margin is the distance in pixels from the bottom-right corner
	Margin int
}

// DefaultOptions returns the settings used for the published asset set
func DefaultOptions() Options {
	return Options{
		InputDir:  "assets",
		OutputDir: "processed_images",
		LogoPath:  "logo.png",
		Opacity:   0.3,
		Scale:     0.2,
		Margin:    20,
	}
}

// sides mirrors the catalog's directory layout
var sides = []string{"male", "female"}

// Result summarizes a watermarking run
type Result struct {
	Processed int
	Skipped   int
}

// Process stamps every image under each side directory of opts.InputDir
// and writes the results to the matching directory under opts.OutputDir.
// Files that are not decodable images are skipped, not fatal.
func Process(opts Options, logger *slog.Logger) (Result, error) {
	logo, err := loadImage(opts.LogoPath)
	if err != nil {
		return Result{}, fmt.Errorf("load logo: %w", err)
	}

	var res Result
	for _, side := range sides {
		inDir := filepath.Join(opts.InputDir, side)
		outDir := filepath.Join(opts.OutputDir, side)

		entries, err := os.ReadDir(inDir)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Warn("input directory missing, skipping side", "dir", inDir)
				continue
			}
			return res, fmt.Errorf("read %s: %w", inDir, err)
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return res, fmt.Errorf("create %s: %w", outDir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			inPath := filepath.Join(inDir, entry.Name())
			outPath := filepath.Join(outDir, entry.Name())
			if err := stampFile(inPath, outPath, logo, opts); err != nil {
				logger.Warn("skipping file", "path", inPath, "error", err)
				res.Skipped++
				continue
			}
			logger.Info("watermarked", "path", outPath)
			res.Processed++
		}
	}
	return res, nil
}

func stampFile(inPath, outPath string, logo image.Image, opts Options) error {
	src, err := loadImage(inPath)
	if err != nil {
		return err
	}

	bounds := src.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, src, bounds.Min, draw.Src)

	scaled := scaleLogo(logo, bounds.Dx(), opts.Scale)
	pos := image.Pt(
		bounds.Max.X-scaled.Bounds().Dx()-opts.Margin,
		bounds.Max.Y-scaled.Bounds().Dy()-opts.Margin,
	)

	mask := image.NewUniform(color.Alpha{A: uint8(opts.Opacity * 255)})
	draw.DrawMask(canvas, scaled.Bounds().Add(pos), scaled, scaled.Bounds().Min, mask, image.Point{}, draw.Over)

	return saveImage(outPath, canvas)
}

// scaleLogo resizes the logo so its width is targetWidth*scale,
// preserving aspect ratio
func scaleLogo(logo image.Image, targetWidth int, scale float64) image.Image {
	lb := logo.Bounds()
	w := int(float64(targetWidth) * scale)
	if w < 1 {
		w = 1
	}
	h := lb.Dy() * w / lb.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), logo, lb, xdraw.Over, nil)
	return dst
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func saveImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	default:
		return png.Encode(f, img)
	}
}
