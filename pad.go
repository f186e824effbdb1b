package imgassets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Padding defaults.
const (
	DefaultPadSize = 1024
	MaxPadSize     = 16384
	DefaultPadIn   = "./assets/images/nur_quran_logo.png"
	DefaultPadOut  = "./assets/images/nur_quran_logo_square.png"
)

// Transparent is the default canvas fill.
var Transparent = color.NRGBA{}

// PadOptions configures PadSquare.
type PadOptions struct {
	Size int         // side of the square canvas (0 = DefaultPadSize)
	Fill color.Color // canvas color (nil = Transparent)
	Fit  bool        // downscale sources larger than Size instead of cropping
}

// Validate checks the canvas size.
func (o PadOptions) Validate() error {
	if o.Size < 0 || o.Size > MaxPadSize {
		return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidSize, o.Size, MaxPadSize)
	}
	return nil
}

// PadResult describes a padded image.
type PadResult struct {
	Source      string
	Destination string
	SourceSize  image.Point // original width and height
	PastedSize  image.Point // size actually pasted (differs from SourceSize when Fit scaled it)
	Size        int         // canvas side
	Offset      image.Point // top-left of the pasted image; negative means cropped
}

// Scaled reports whether the source was resized before pasting.
func (r PadResult) Scaled() bool {
	return r.PastedSize != r.SourceSize
}

// PadSquare centers the image at src on a Size x Size canvas and writes
// it to dst. The offset on each axis is floor((Size - dim) / 2), so a
// source larger than the canvas gets a negative offset and is cropped on
// both sides. The destination is PNG unless its extension is .jpg/.jpeg.
func PadSquare(src, dst string, opts PadOptions) (PadResult, error) {
	if err := opts.Validate(); err != nil {
		return PadResult{}, err
	}
	size := opts.Size
	if size == 0 {
		size = DefaultPadSize
	}
	fill := opts.Fill
	if fill == nil {
		fill = Transparent
	}

	result := PadResult{Source: src, Destination: dst, Size: size}

	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return result, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	img, err := decodeFile(src)
	if err != nil {
		return result, err
	}
	result.SourceSize = img.Bounds().Size()

	if opts.Fit {
		img = fitWithin(img, size)
	}
	result.PastedSize = img.Bounds().Size()

	result.Offset = image.Pt(
		floorDiv(size-result.PastedSize.X, 2),
		floorDiv(size-result.PastedSize.Y, 2),
	)

	canvas := imaging.New(size, size, fill)
	canvas = imaging.Paste(canvas, img, result.Offset)

	if err := encodeFile(dst, canvas, formatFor(dst)); err != nil {
		return result, err
	}
	return result, nil
}

// fitWithin scales img down, preserving aspect ratio, so both sides are
// at most size. Images that already fit are returned unchanged.
func fitWithin(img image.Image, size int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= size && h <= size {
		return img
	}

	scale := math.Min(float64(size)/float64(w), float64(size)/float64(h))
	newW := max(1, int(math.Round(float64(w)*scale)))
	newH := max(1, int(math.Round(float64(h)*scale)))

	dst := image.NewNRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Rect, img, b, draw.Src, nil)
	return dst
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ParseColor parses a fill color: "transparent", or hex "#RGB", "#RGBA",
// "#RRGGBB", "#RRGGBBAA" (leading # optional). Colors without alpha are
// opaque.
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "transparent" {
		return Transparent, nil
	}
	v = strings.TrimPrefix(v, "#")

	switch len(v) {
	case 3, 4:
		expanded := make([]byte, 0, len(v)*2)
		for i := 0; i < len(v); i++ {
			expanded = append(expanded, v[i], v[i])
		}
		v = string(expanded)
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(v) == 6 {
		v += "ff"
	}

	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}
