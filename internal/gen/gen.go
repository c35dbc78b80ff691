// Package gen drives the icon batch: it renders every icon in the output
// manifest under a project root and writes the web PNGs and the
// multi-resolution Windows app_icon.ico.
package gen

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/streamwatch/icons/internal/icon"
	"github.com/streamwatch/icons/internal/paths"
)

// target is one (relative output path, pixel size) pair of the manifest.
// Paths are forward-slash, relative to the web directory.
type target struct {
	rel  string
	size int
}

var webIcons = []target{
	{"favicon.png", 32},
	{"icons/Icon-192.png", 192},
	{"icons/Icon-512.png", 512},
}

var maskableIcons = []target{
	{"icons/Icon-maskable-192.png", 192},
	{"icons/Icon-maskable-512.png", 512},
}

// icoSizes are the resolutions embedded in the Windows icon container.
var icoSizes = []int{16, 32, 48, 64, 128, 256}

// Run renders the full icon set below root and reports progress on out.
// Output directories are created as needed. A failure aborts the batch
// immediately and leaves any files already written in place.
func Run(root string, out io.Writer) error {
	webDir := paths.WebDir(root)
	winDir := paths.WindowsDir(root)

	fmt.Fprintln(out, "Generating StreamWatch branded icons...")

	if err := os.MkdirAll(paths.WebIconsDir(root), paths.DirPerm); err != nil {
		return fmt.Errorf("create web icon dir: %w", err)
	}
	if err := os.MkdirAll(winDir, paths.DirPerm); err != nil {
		return fmt.Errorf("create windows resource dir: %w", err)
	}

	for _, tg := range webIcons {
		img, err := icon.Draw(tg.size)
		if err != nil {
			return err
		}
		if err := writePNG(filepath.Join(webDir, filepath.FromSlash(tg.rel)), img); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Created %s (%dx%d)\n", tg.rel, tg.size, tg.size)
	}

	for _, tg := range maskableIcons {
		img, err := icon.DrawMaskable(tg.size)
		if err != nil {
			return err
		}
		if err := writePNG(filepath.Join(webDir, filepath.FromSlash(tg.rel)), img); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Created %s (%dx%d)\n", tg.rel, tg.size, tg.size)
	}

	variants := make([]image.Image, 0, len(icoSizes))
	for _, size := range icoSizes {
		img, err := icon.Draw(size)
		if err != nil {
			return err
		}
		variants = append(variants, img)
	}
	if err := writeICO(filepath.Join(winDir, paths.IcoFileName), variants); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Created %s (%s)\n", paths.IcoFileName, joinSizes(icoSizes))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! Icon files generated:")
	fmt.Fprintf(out, "  Web:     %s\n", webDir)
	fmt.Fprintf(out, "  Windows: %s\n", winDir)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Rebuild the app to see changes.")
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// writeICO bundles all variants into one icon container; Windows picks the
// best-fitting resolution at display time.
func writeICO(path string, variants []image.Image) error {
	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, variants); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), paths.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func joinSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ", ")
}
