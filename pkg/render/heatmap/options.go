package heatmap

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/prefgrid/pkg/errors"
)

// Output formats.
const (
	FormatJPG  = "jpg"
	FormatPNG  = "png"
	FormatTIFF = "tif"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
)

// Defaults match a 10 x 8 inch figure saved at 300 DPI.
const (
	DefaultFormat = FormatJPG
	DefaultDPI    = 300
	DefaultWidth  = 10.0 // inches
	DefaultHeight = 8.0  // inches

	maxDPI  = 1200
	maxSize = 100.0 // inches
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJPG:  true,
	FormatPNG:  true,
	FormatTIFF: true,
	FormatSVG:  true,
	FormatPDF:  true,
}

var formatAliases = map[string]string{
	"jpeg": FormatJPG,
	"tiff": FormatTIFF,
}

// Options configures the figure. Zero values select the defaults.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Legend string // colour bar label; no colour bar label if empty

	Format string  // one of ValidFormats (aliases jpeg, tiff accepted)
	DPI    int     // raster resolution
	Width  float64 // figure width in inches
	Height float64 // figure height in inches
}

// SetDefaults fills zero-valued fields.
func (o *Options) SetDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
}

// Validate normalizes the format name and checks ranges.
// Call after SetDefaults.
func (o *Options) Validate() error {
	f, err := NormalizeFormat(o.Format)
	if err != nil {
		return err
	}
	o.Format = f

	if o.DPI < 1 || o.DPI > maxDPI {
		return errors.New(errors.ErrCodeInvalidInput, "dpi %d out of range (1-%d)", o.DPI, maxDPI)
	}
	if o.Width <= 0 || o.Width > maxSize || o.Height <= 0 || o.Height > maxSize {
		return errors.New(errors.ErrCodeInvalidInput, "figure size %gx%g in out of range (0-%g]", o.Width, o.Height, maxSize)
	}
	return nil
}

// NormalizeFormat lower-cases a format name and resolves aliases.
func NormalizeFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	if alias, ok := formatAliases[f]; ok {
		f = alias
	}
	if !ValidFormats[f] {
		return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: jpg, png, tif, svg, pdf)", format)
	}
	return f, nil
}

// FormatFromPath derives the output format from a file extension.
func FormatFromPath(path string) (string, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format from %q (no extension)", path)
	}
	return NormalizeFormat(ext)
}

// IsRaster reports whether format is drawn on a pixel canvas.
func IsRaster(format string) bool {
	switch format {
	case FormatJPG, FormatPNG, FormatTIFF:
		return true
	}
	return false
}
