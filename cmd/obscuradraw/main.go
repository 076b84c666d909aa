// Copyright © 2024 Galvanized Logic Inc.

// Command obscuradraw is a minimal example consumer of the render
// driver: it loads a YAML scene description, draws one frame into an
// in-memory image via the Paint callback, and writes the result out as
// a BMP. None of this - file I/O, image encoding, flag parsing - is
// part of the renderer core; it exists only to give the driver
// something to drive end to end.
package main

import (
	"flag"
	"image"
	"image/color"
	"log/slog"
	"os"

	"golang.org/x/image/bmp"

	"github.com/lucent3d/obscura/load"
	"github.com/lucent3d/obscura/render"
	"github.com/lucent3d/obscura/scene"
	"github.com/lucent3d/obscura/work"
)

func main() {
	scenePath := flag.String("scene", "", "path to a YAML scene description")
	outPath := flag.String("out", "frame.bmp", "path to write the rendered BMP")
	width := flag.Int("width", 640, "frame width in pixels")
	height := flag.Int("height", 480, "frame height in pixels")
	workers := flag.Uint("workers", 4, "number of render worker goroutines")
	flag.Parse()

	if *scenePath == "" {
		slog.Error("obscuradraw: -scene is required")
		os.Exit(1)
	}

	s, err := load.Scene(*scenePath, scene.Capacities{})
	if err != nil {
		slog.Error("obscuradraw: failed to load scene", "err", err)
		os.Exit(1)
	}

	frame := image.NewRGBA(image.Rect(0, 0, *width, *height))
	paint := func(x, y int, packed uint32) {
		r := uint8(packed >> 16)
		g := uint8(packed >> 8)
		b := uint8(packed)
		frame.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
	}

	q := work.NewQueue(uint32(*workers), 64, work.SpinWait)
	defer q.Close()

	d := render.NewDriver(s, q, *width, *height, paint)
	d.Draw()

	out, err := os.Create(*outPath)
	if err != nil {
		slog.Error("obscuradraw: failed to create output file", "err", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := bmp.Encode(out, frame); err != nil {
		slog.Error("obscuradraw: failed to encode bmp", "err", err)
		os.Exit(1)
	}

	slog.Info("obscuradraw: wrote frame", "path", *outPath, "width", *width, "height", *height)
}
