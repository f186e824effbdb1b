// Package imgassets prepares image assets for a mobile app's resource
// directory.
//
// # Quick Start
//
// Report every image in a directory:
//
//	results, err := imgassets.Inspect(ctx, "./assets/images", imgassets.InspectOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    if r.Err != nil {
//	        fmt.Printf("Error reading %s: %v\n", r.Name, r.Err)
//	        continue
//	    }
//	    fmt.Printf("%s: (%d, %d) (%s)\n", r.Name, r.Width, r.Height, r.Mode)
//	}
//
// # Operations
//
// Three independent passes operate on a single flat directory:
//
//  1. Inspect lists PNG/JPEG files with their size and color mode.
//  2. Normalize renames files to [a-z][a-z0-9_.]*.png and re-encodes
//     them as PNG with an alpha channel, deleting the originals.
//  3. PadSquare centers one image on a square canvas.
//
// Per-file failures never abort Inspect or Normalize; they are returned
// in each result's Err field. Errors wrap the sentinels in errors.go and
// can be matched with errors.Is.
//
// # Name Collisions
//
// Two files can normalize to the same name ("My-Icon.png" and
// "my_icon.PNG" both become "my_icon.png"). NormalizeOptions.OnCollision
// selects what happens:
//
//   - CollisionOverwrite: the file processed last wins (default).
//   - CollisionSkip: only one file is normalized; the others are left alone.
//   - CollisionSuffix: later files become my_icon_2.png, my_icon_3.png, ...
//
// Use PlanRenames, or NormalizeOptions.DryRun, to preview the result.
package imgassets
