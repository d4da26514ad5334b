package export

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"

	"genicon/render"
)

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "assets")
	if err := EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		t.Fatalf("stat %s: %v", dir, err)
	}
}

// Full export scenario: a 512px canvas produces a 256x256 PNG and an ICO
// carrying exactly the fixed size set, each entry transparent at the corners
// and opaque in the middle.
func TestExportScenario(t *testing.T) {
	canvas := render.Render(512)
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "tray.png")
	if err := WritePNG(canvas, pngPath); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got.X != PNGSize || got.Y != PNGSize {
		t.Fatalf("png size = %v, want %dx%d", got, PNGSize, PNGSize)
	}
	if a := alphaAt(img, 0, 0); a != 0 {
		t.Errorf("png corner alpha = %d, want 0", a)
	}
	if a := alphaAt(img, PNGSize/2, PNGSize/2); a == 0 {
		t.Error("png center transparent")
	}

	icoPath := filepath.Join(dir, "tray.ico")
	if err := WriteICO(canvas, icoPath); err != nil {
		t.Fatal(err)
	}
	cf, err := os.Open(icoPath)
	if err != nil {
		t.Fatal(err)
	}
	defer cf.Close()
	imgs, err := ico.DecodeAll(cf)
	if err != nil {
		t.Fatal(err)
	}
	if len(imgs) != len(ICOSizes) {
		t.Fatalf("ico holds %d images, want %d", len(imgs), len(ICOSizes))
	}
	for i, want := range ICOSizes {
		b := imgs[i].Bounds()
		if b.Dx() != want || b.Dy() != want {
			t.Errorf("entry %d: %dx%d, want %dx%d", i, b.Dx(), b.Dy(), want, want)
		}
		// Corner transparency survives resampling to within one 8-bit step.
		if a := alphaAt(imgs[i], b.Min.X, b.Min.Y); a > 0x0101 {
			t.Errorf("entry %d: corner alpha = %d, want 0", i, a)
		}
		if a := alphaAt(imgs[i], b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2); a == 0 {
			t.Errorf("entry %d: center transparent", i)
		}
	}
}

// Identical constants must yield byte-identical files.
func TestExportDeterministic(t *testing.T) {
	canvas := render.Render(128)
	dir := t.TempDir()

	write := func(name string, fn func(image.Image, string) error) []byte {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := fn(canvas, path); err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		return b
	}

	if !bytes.Equal(write("a.png", WritePNG), write("b.png", WritePNG)) {
		t.Fatal("png exports differ between runs")
	}
	if !bytes.Equal(write("a.ico", WriteICO), write("b.ico", WriteICO)) {
		t.Fatal("ico exports differ between runs")
	}
}

func TestWritePNGBadPath(t *testing.T) {
	canvas := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	err := WritePNG(canvas, filepath.Join(t.TempDir(), "missing", "out.png"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
