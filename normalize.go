package imgassets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/alnah/go-imgassets/internal/fileutil"
)

// NormalizeOptions configures Normalize.
type NormalizeOptions struct {
	Prefix      string          // prepended to names not starting with a letter (default "img_")
	OnCollision CollisionPolicy // default CollisionOverwrite
	DryRun      bool            // plan and report without touching disk
}

// withDefaults fills zero values.
func (o NormalizeOptions) withDefaults() NormalizeOptions {
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.OnCollision == "" {
		o.OnCollision = DefaultCollisionPolicy
	}
	return o
}

// Validate checks prefix and collision policy.
func (o NormalizeOptions) Validate() error {
	o = o.withDefaults()
	if err := ValidatePrefix(o.Prefix); err != nil {
		return err
	}
	return o.OnCollision.Validate()
}

// NormalizeResult holds the outcome for one source file.
type NormalizeResult struct {
	Name      string // original file name
	Source    string // original path
	Target    string // normalized path (empty when naming failed)
	Renamed   bool   // target path differs from source path
	Deleted   bool   // source was removed after the write
	Skipped   bool   // left untouched because of a name collision
	Collision bool   // another file normalized to the same name
	Err       error
}

// Normalize renames every PNG/JPEG file directly inside dir to its
// normalized name and re-encodes it as a PNG with an alpha channel.
// Files are processed one at a time in directory order. When the target
// path differs from the source, the source is deleted after the new file
// has been written. Per-file failures are carried in the results and do
// not stop the pass; only invalid options or an unreadable dir are
// returned as an error.
func Normalize(ctx context.Context, dir string, opts NormalizeOptions) ([]NormalizeResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	names, err := listImages(dir)
	if err != nil {
		return nil, err
	}

	plan := PlanRenames(names, opts.Prefix, opts.OnCollision)
	results := make([]NormalizeResult, 0, len(plan))

	for _, step := range plan {
		result := NormalizeResult{
			Name:      step.Source,
			Source:    filepath.Join(dir, step.Source),
			Collision: step.Collision,
		}
		if step.Target != "" {
			result.Target = filepath.Join(dir, step.Target)
			result.Renamed = !fileutil.SamePath(result.Source, result.Target)
		}

		switch {
		case ctx.Err() != nil:
			result.Err = ctx.Err()
		case step.Skip:
			result.Skipped = true
			result.Err = step.Err
		case step.Err != nil:
			result.Err = step.Err
		case !opts.DryRun:
			result.Deleted, result.Err = normalizeFile(result.Source, result.Target)
		}

		results = append(results, result)
	}

	return results, nil
}

// normalizeFile converts src to an NRGBA PNG at dst and removes src when
// it is a different file. It reports whether src was deleted.
func normalizeFile(src, dst string) (bool, error) {
	img, err := decodeFile(src)
	if err != nil {
		return false, err
	}

	if err := encodeFile(dst, imaging.Clone(img), imaging.PNG); err != nil {
		return false, err
	}

	if fileutil.SamePath(src, dst) || fileutil.SameFile(src, dst) {
		return false, nil
	}
	if err := os.Remove(src); err != nil {
		return false, fmt.Errorf("%w: %w", ErrRemove, err)
	}
	return true, nil
}
