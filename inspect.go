package imgassets

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"
)

// InspectOptions configures Inspect.
type InspectOptions struct {
	// Workers bounds concurrent file reads (0 = GOMAXPROCS).
	Workers int
	// Verify decodes full pixel data instead of the header only,
	// surfacing truncated or corrupt image bodies.
	Verify bool
}

// InspectResult describes one image file found by Inspect.
type InspectResult struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Mode   string `json:"mode,omitempty"`
	Format string `json:"format,omitempty"`
	Err    error  `json:"-"`
}

// Inspect reports dimensions and color mode for every PNG/JPEG file
// directly inside dir. There is exactly one result per supported file,
// in directory order. Per-file failures are carried in Result.Err; only
// a failure to list dir is returned as an error.
func Inspect(ctx context.Context, dir string, opts InspectOptions) ([]InspectResult, error) {
	names, err := listImages(dir)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return []InspectResult{}, nil
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(names) {
		workers = len(names)
	}

	results := make([]InspectResult, len(names))
	jobs := make(chan int, len(names))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				path := filepath.Join(dir, names[idx])
				if ctx.Err() != nil {
					results[idx] = InspectResult{Name: names[idx], Path: path, Err: ctx.Err()}
					continue
				}
				results[idx] = inspectFile(names[idx], path, opts.Verify)
			}
		}()
	}

	for i := range names {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results, nil
}

// inspectFile reads one image and fills its result.
func inspectFile(name, path string, verify bool) InspectResult {
	result := InspectResult{Name: name, Path: path}

	hdr, err := decodeHeader(path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Width = hdr.Width
	result.Height = hdr.Height
	result.Mode = hdr.Mode
	result.Format = hdr.Format

	if verify {
		if _, err := decodeFile(path); err != nil {
			result.Err = err
		}
	}
	return result
}
