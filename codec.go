package imgassets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG for image.DecodeConfig
	_ "image/png"  // register PNG for image.DecodeConfig
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/alnah/go-imgassets/internal/fileutil"
)

// jpegQuality is used when a destination asks for JPEG output.
const jpegQuality = 95

// decodeFile opens path and decodes the full image.
// The file is closed before returning, on every path.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from directory listing or caller
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// imageHeader is what decodeHeader learns without decoding pixel data.
type imageHeader struct {
	Width  int
	Height int
	Mode   string
	Format string
}

// decodeHeader reads only the image header of path. PNG modes come from
// the IHDR bytes; other formats are named from the decoder's color model.
func decodeHeader(path string) (imageHeader, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from directory listing
	if err != nil {
		return imageHeader{}, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	head := make([]byte, pngHeaderLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return imageHeader{}, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	head = head[:n]

	cfg, format, err := image.DecodeConfig(io.MultiReader(bytes.NewReader(head), f))
	if err != nil {
		return imageHeader{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	mode, ok := pngMode(head)
	if format != "png" || !ok {
		mode = ColorMode(cfg.ColorModel)
	}
	return imageHeader{Width: cfg.Width, Height: cfg.Height, Mode: mode, Format: format}, nil
}

// formatFor picks the output encoding from the destination extension.
// Anything other than .jpg/.jpeg is written as PNG.
func formatFor(path string) imaging.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return imaging.JPEG
	default:
		return imaging.PNG
	}
}

// alphaNRGBA reports itself as never opaque so the PNG encoder keeps the
// alpha channel (color type 6) even when every pixel has A=255.
type alphaNRGBA struct{ *image.NRGBA }

func (alphaNRGBA) Opaque() bool { return false }

// encodeFile writes img to path atomically in the given format.
// NRGBA images written as PNG always carry an alpha channel.
func encodeFile(path string, img image.Image, format imaging.Format) error {
	if nrgba, ok := img.(*image.NRGBA); ok && format == imaging.PNG {
		img = alphaNRGBA{nrgba}
	}

	var encodeErr error
	err := fileutil.WriteFileAtomic(path, fileutil.FilePermissions, func(w io.Writer) error {
		encodeErr = imaging.Encode(w, img, format, imaging.JPEGQuality(jpegQuality))
		return encodeErr
	})
	if err == nil {
		return nil
	}
	if encodeErr != nil {
		return fmt.Errorf("%w: %v", ErrEncode, encodeErr)
	}
	return fmt.Errorf("%w: %w", ErrWrite, err)
}
