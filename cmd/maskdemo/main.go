// Command maskdemo applies a clip mask to an image.
//
// It reads an image and a mask PNG, rescales the mask to the image size if
// their dimensions differ, applies the mask in luminance or alpha mode, and
// writes the result as PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/clipmask"
)

func main() {
	var (
		imgPath  = flag.String("image", "", "input image PNG (required)")
		maskPath = flag.String("mask", "", "mask PNG (required)")
		outPath  = flag.String("output", "masked.png", "output file")
		mode     = flag.String("mode", "luminance", "mask mode: luminance or alpha")
		parallel = flag.Bool("parallel", false, "shard the work across CPUs")
		workers  = flag.Int("workers", 0, "worker count for -parallel (0 = GOMAXPROCS)")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *imgPath == "" || *maskPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		clipmask.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	img := clipmask.FromImage(loadPNG(*imgPath))
	if img == nil {
		log.Fatalf("%s has empty bounds", *imgPath)
	}
	maskSrc := loadPNG(*maskPath)

	// The mask must be index-aligned with the image; rescale when needed.
	if b := maskSrc.Bounds(); b.Dx() != img.Width() || b.Dy() != img.Height() {
		log.Printf("scaling mask %dx%d -> %dx%d", b.Dx(), b.Dy(), img.Width(), img.Height())
		scaled := image.NewNRGBA(image.Rect(0, 0, img.Width(), img.Height()))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), maskSrc, b, draw.Src, nil)
		maskSrc = scaled
	}
	mask := clipmask.FromImage(maskSrc)
	if mask == nil {
		log.Fatalf("%s has empty bounds", *maskPath)
	}

	opts := []clipmask.Option{}
	switch *mode {
	case "luminance":
	case "alpha":
		opts = append(opts, clipmask.WithMode(clipmask.MaskAlpha))
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	var err error
	if *parallel {
		err = clipmask.ApplyParallel(img, mask, append(opts, clipmask.WithWorkers(*workers))...)
	} else {
		err = clipmask.Apply(img, mask, opts...)
	}
	if err != nil {
		log.Fatalf("apply mask: %v", err)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer out.Close()

	if err := png.Encode(out, img.ToNRGBA()); err != nil {
		log.Fatalf("encode output: %v", err)
	}
	log.Printf("wrote %s (%dx%d, %s mode)", *outPath, img.Width(), img.Height(), *mode)
}

func loadPNG(path string) image.Image {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		log.Fatalf("decode %s: %v", path, err)
	}
	return img
}
