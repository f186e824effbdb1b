package imgassets

import "errors"

// Sentinel errors for library operations.
var (
	ErrReadDir        = errors.New("failed to read image directory")
	ErrOpen           = errors.New("failed to open image")
	ErrDecode         = errors.New("failed to decode image")
	ErrEncode         = errors.New("failed to encode image")
	ErrWrite          = errors.New("failed to write image")
	ErrRemove         = errors.New("failed to remove original image")
	ErrSourceNotFound = errors.New("source image does not exist")

	// Normalization errors.
	ErrEmptyName              = errors.New("file name has an empty stem")
	ErrNameCollision          = errors.New("normalized name collides with another file")
	ErrInvalidPrefix          = errors.New("invalid name prefix")
	ErrInvalidCollisionPolicy = errors.New("invalid collision policy")

	// Padding validation errors.
	ErrInvalidSize  = errors.New("invalid canvas size")
	ErrInvalidColor = errors.New("invalid fill color")
)
