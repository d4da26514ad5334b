// genicon renders the application icon and writes the tray assets.
//
// Everything is a compile-time constant: palette, geometry, output sizes and
// filenames. Run it from the repo root; it creates the assets directory if
// needed and writes a 256px PNG plus a multi-resolution ICO.
package main

import (
	"os"
	"path/filepath"
	"time"

	"genicon/export"
	"genicon/log"
	"genicon/render"
)

const (
	canvasSize = 512
	outDir     = "assets"
	pngName    = "tray.png"
	icoName    = "tray.ico"
)

func main() {
	log.Init()
	if err := run(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run() error {
	start := time.Now()
	canvas := render.Render(canvasSize)
	log.Stage("render", time.Since(start))

	if err := export.EnsureDir(outDir); err != nil {
		return err
	}

	pngPath := filepath.Join(outDir, pngName)
	start = time.Now()
	if err := export.WritePNG(canvas, pngPath); err != nil {
		return err
	}
	log.Stage("png", time.Since(start))
	logWrote(pngPath)

	icoPath := filepath.Join(outDir, icoName)
	start = time.Now()
	if err := export.WriteICO(canvas, icoPath); err != nil {
		return err
	}
	log.Stage("ico", time.Since(start))
	logWrote(icoPath)

	return nil
}

func logWrote(path string) {
	var size int64
	if fi, err := os.Stat(path); err == nil {
		size = fi.Size()
	}
	log.Wrote(path, size)
}
