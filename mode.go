package imgassets

import (
	"bytes"
	"fmt"
	"image/color"
)

// Color mode names reported by Inspect.
const (
	ModeBilevel   = "1"
	ModeGray      = "L"
	ModeGray16    = "I;16"
	ModeGrayAlpha = "LA"
	ModeRGB       = "RGB"
	ModeRGBA      = "RGBA"
	ModePalette   = "P"
	ModeCMYK      = "CMYK"
)

// PNG IHDR color types.
const (
	pngGray      = 0
	pngTrueColor = 2
	pngPaletted  = 3
	pngGrayAlpha = 4
	pngTrueAlpha = 6
)

// pngSignature opens every PNG file; IHDR follows it.
var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// pngHeaderLen covers the signature, the IHDR length and type, width,
// height, bit depth and color type.
const pngHeaderLen = 26

// ColorMode names the pixel layout of a color model.
//
// The PNG decoder reports 8-bit truecolor as color.RGBAModel and
// truecolor with alpha as color.NRGBAModel, so the former is RGB.
// JPEG YCbCr data is reported as RGB since that is what it decodes to.
// 16-bit truecolor keeps the RGB/RGBA name. A color model cannot tell
// gray+alpha from truecolor+alpha; PNG files are named from their IHDR
// instead (see pngMode), which does.
func ColorMode(m color.Model) string {
	if _, ok := m.(color.Palette); ok {
		return ModePalette
	}
	switch m {
	case color.RGBAModel, color.RGBA64Model, color.YCbCrModel:
		return ModeRGB
	case color.NRGBAModel, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model:
		return ModeRGBA
	case color.GrayModel:
		return ModeGray
	case color.Gray16Model:
		return ModeGray16
	case color.CMYKModel:
		return ModeCMYK
	}
	return fmt.Sprintf("%T", m)
}

// pngMode names the mode stored in a PNG IHDR. A tRNS chunk does not
// change the name, and 16-bit truecolor is named like 8-bit.
// It reports false when hdr is not a PNG header.
func pngMode(hdr []byte) (string, bool) {
	if len(hdr) < pngHeaderLen || !bytes.HasPrefix(hdr, pngSignature) || string(hdr[12:16]) != "IHDR" {
		return "", false
	}
	depth, colorType := hdr[24], hdr[25]
	switch colorType {
	case pngGray:
		switch depth {
		case 1:
			return ModeBilevel, true
		case 16:
			return ModeGray16, true
		}
		return ModeGray, true
	case pngTrueColor:
		return ModeRGB, true
	case pngPaletted:
		return ModePalette, true
	case pngGrayAlpha:
		return ModeGrayAlpha, true
	case pngTrueAlpha:
		return ModeRGBA, true
	}
	return "", false
}
