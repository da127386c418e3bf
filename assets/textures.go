package assets

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math/rand"
	"os"
)

// Procedural stand-in textures, generated once at startup when the files are
// missing. They only need to look plausible; no asset pipeline guarantees
// apply.

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func fill(img *image.NRGBA, c color.NRGBA) {
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// WallTexture is dark red plaster with speckle noise.
func WallTexture(rng *rand.Rand) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 512, 512))
	fill(img, color.NRGBA{R: 55, G: 24, B: 20, A: 255})
	for loopN := 0; loopN < 2000; loopN++ {
		x, y := rng.Intn(512), rng.Intn(512)
		img.SetNRGBA(x, y, color.NRGBA{
			R: uint8(50 + rng.Intn(21)),
			G: uint8(20 + rng.Intn(11)),
			B: uint8(18 + rng.Intn(8)),
			A: 255,
		})
	}
	return img
}

// CarpetTexture is a beige checker with seam lines.
func CarpetTexture() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 512, 512))
	fill(img, color.NRGBA{R: 180, G: 170, B: 140, A: 255})

	dark := color.NRGBA{R: 170, G: 160, B: 130, A: 255}
	for ty := 0; ty < 512; ty += 32 {
		for tx := 0; tx < 512; tx += 32 {
			if (tx/32+ty/32)%2 != 0 {
				continue
			}
			for y := ty; y < ty+32; y++ {
				for x := tx; x < tx+32; x++ {
					img.SetNRGBA(x, y, dark)
				}
			}
		}
	}

	seam := color.NRGBA{R: 150, G: 140, B: 120, A: 255}
	for i := 0; i < 512; i += 64 {
		for o := 0; o < 3; o++ {
			for p := 0; p < 512; p++ {
				img.SetNRGBA(i+o, p, seam)
				img.SetNRGBA(p, i+o, seam)
			}
		}
	}
	return img
}

// CeilingTexture is grey with speckle noise.
func CeilingTexture(rng *rand.Rand) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 256, 256))
	fill(img, color.NRGBA{R: 70, G: 65, B: 60, A: 255})
	for loopN := 0; loopN < 800; loopN++ {
		x, y := rng.Intn(256), rng.Intn(256)
		img.SetNRGBA(x, y, color.NRGBA{
			R: uint8(60 + rng.Intn(21)),
			G: uint8(55 + rng.Intn(16)),
			B: uint8(50 + rng.Intn(16)),
			A: 255,
		})
	}
	return img
}

// DoorTexture is brown wood with inset panel outlines.
func DoorTexture() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 256, 512))
	fill(img, color.NRGBA{R: 85, G: 45, B: 30, A: 255})

	outline := color.NRGBA{R: 110, G: 70, B: 50, A: 255}
	for y := 0; y < 512; y += 64 {
		drawRectOutline(img, 10, y+10, 246, y+54, 2, outline)
	}
	return img
}

func drawRectOutline(img *image.NRGBA, x0, y0, x1, y1, width int, c color.NRGBA) {
	for w := 0; w < width; w++ {
		for x := x0; x <= x1; x++ {
			img.SetNRGBA(x, y0+w, c)
			img.SetNRGBA(x, y1-w, c)
		}
		for y := y0; y <= y1; y++ {
			img.SetNRGBA(x0+w, y, c)
			img.SetNRGBA(x1-w, y, c)
		}
	}
}
