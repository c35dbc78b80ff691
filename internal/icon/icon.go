// Package icon renders the branded StreamWatch application icons: a rounded
// red square carrying the "SW" mark, in a standard (transparent-corner) and a
// maskable (full-bleed) variant.
package icon

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Brand palette. The near-black is part of the brand set even though the
// renderers only use the red and white.
const (
	BackgroundColor = "#E31837" // TMZ red
	TextColor       = "#FFFFFF"
	BrandBlack      = "#1A1A1A"
)

// Label is the two-letter mark drawn on every icon.
const Label = "SW"

// Bold faces tried in order; the first one that loads wins.
var boldFonts = []string{
	"arialbd.ttf",    // Arial Bold (Windows)
	"Arial Bold.ttf", // Arial Bold (macOS)
	"DejaVuSans-Bold.ttf",
	"FreeSansBold.ttf",
}

// The maskable renderer has always probed a shorter list.
var maskableBoldFonts = boldFonts[:3]

// fontDirs lists the directories probed for each font name.
var fontDirs = []string{
	`C:\Windows\Fonts`,
	"/Library/Fonts",
	"/System/Library/Fonts/Supplemental",
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/truetype/freefont",
	"/usr/share/fonts/truetype/msttcorefonts",
	"/usr/share/fonts",
}

// Draw renders the standard app icon at size×size pixels: a rounded rectangle
// in the brand red, inset 8% per side with an 18% corner radius, with the
// label centered on top. Everything outside the rectangle stays transparent.
func Draw(size int) (image.Image, error) {
	dc := gg.NewContext(size, size)

	margin := int(float64(size) * 0.08)
	radius := int(float64(size) * 0.18)
	dc.SetHexColor(BackgroundColor)
	dc.DrawRoundedRectangle(float64(margin), float64(margin),
		float64(size-2*margin), float64(size-2*margin), float64(radius))
	dc.Fill()

	face, _, err := loadFace(boldFonts, float64(int(float64(size)*0.45)))
	if err != nil {
		return nil, err
	}
	defer face.Close()

	drawLabel(dc, face, size)
	return dc.Image(), nil
}

// DrawMaskable renders the PWA maskable variant. Hosts may crop the icon to
// an arbitrary shape, so the background fills the whole canvas with no
// transparency and the label is sized against the central 80% safe zone so
// that trimming the outer 10% border never clips it. The label still centers
// on the full canvas; the smaller face keeps it inside the safe zone.
func DrawMaskable(size int) (image.Image, error) {
	dc := gg.NewContext(size, size)
	dc.SetHexColor(BackgroundColor)
	dc.Clear()

	safeZone := int(float64(size) * 0.8)
	face, _, err := loadFace(maskableBoldFonts, float64(int(float64(safeZone)*0.45)))
	if err != nil {
		return nil, err
	}
	defer face.Close()

	drawLabel(dc, face, size)
	return dc.Image(), nil
}

// drawLabel paints the label centered on the canvas. BoundString reports the
// glyph box relative to the baseline origin, whose top is above y=0, so the
// origin is shifted by the box minimum to land the visual box at the center.
func drawLabel(dc *gg.Context, face font.Face, size int) {
	bounds, _ := font.BoundString(face, Label)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := float64((size-w)/2 - bounds.Min.X.Floor())
	y := float64((size-h)/2 - bounds.Min.Y.Floor())

	dc.SetFontFace(face)
	dc.SetHexColor(TextColor)
	dc.DrawString(Label, x, y)
}

// loadFace returns the first of names that loads at the given point size,
// probing every font directory per name. A missing file just advances the
// probe; a file that exists but does not parse is an error. When nothing is
// installed the fixed-size builtin face is returned with ok=false — it
// ignores point sizes and renders small, which keeps the generator usable on
// systems without any of the named fonts.
func loadFace(names []string, points float64) (font.Face, bool, error) {
	for _, name := range names {
		for _, dir := range fontDirs {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				continue
			}
			ft, err := opentype.Parse(data)
			if err != nil {
				return nil, false, fmt.Errorf("parse font %s: %w", name, err)
			}
			face, err := opentype.NewFace(ft, &opentype.FaceOptions{
				Size:    points,
				DPI:     72,
				Hinting: font.HintingFull,
			})
			if err != nil {
				return nil, false, fmt.Errorf("font face %s: %w", name, err)
			}
			return face, true, nil
		}
	}
	return basicfont.Face7x13, false, nil
}
