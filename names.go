package imgassets

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultPrefix is prepended to names that do not start with a letter.
const DefaultPrefix = "img_"

// targetExt is the extension of every normalized file.
const targetExt = ".png"

// CollisionPolicy decides what happens when several files normalize to
// the same name.
type CollisionPolicy string

// Collision policies.
const (
	// CollisionOverwrite processes every file in order; the last one
	// written wins and earlier sources are deleted.
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionSkip processes one file per target and leaves the rest
	// untouched.
	CollisionSkip CollisionPolicy = "skip"
	// CollisionSuffix gives later files a numeric suffix (_2, _3, ...).
	CollisionSuffix CollisionPolicy = "suffix"
)

// DefaultCollisionPolicy keeps the historical overwrite behavior.
const DefaultCollisionPolicy = CollisionOverwrite

// Validate checks that p names a known policy.
func (p CollisionPolicy) Validate() error {
	switch p {
	case CollisionOverwrite, CollisionSkip, CollisionSuffix:
		return nil
	}
	return fmt.Errorf("%w: %q (must be overwrite, skip, or suffix)", ErrInvalidCollisionPolicy, string(p))
}

// ValidatePrefix checks that prefix itself satisfies the name rules: it
// must start with a lowercase letter and use only [a-z0-9_.].
func ValidatePrefix(prefix string) error {
	if prefix == "" || !isLower(prefix[0]) {
		return fmt.Errorf("%w: %q (must start with a lowercase letter)", ErrInvalidPrefix, prefix)
	}
	for i := 0; i < len(prefix); i++ {
		if !isAllowed(prefix[i]) {
			return fmt.Errorf("%w: %q (only a-z, 0-9, _ and . are allowed)", ErrInvalidPrefix, prefix)
		}
	}
	return nil
}

// NormalizeName maps a file name onto [a-z][a-z0-9_.]*\.png.
//
// Hyphens become underscores, the stem is lowercased, accents are
// folded, and any other disallowed rune becomes an underscore. If the
// result does not start with a letter, prefix is prepended. The original
// extension is always replaced by .png. An empty prefix means DefaultPrefix.
func NormalizeName(name, prefix string) (string, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	stem, _ := splitName(name)
	if stem == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyName, name)
	}

	stem = strings.ToLower(strings.ReplaceAll(stem, "-", "_"))
	stem = sanitize(foldAccents(stem))

	if stem == "" || !isLower(stem[0]) {
		stem = prefix + stem
	}
	return stem + targetExt, nil
}

// foldAccents strips combining marks so "é" becomes "e".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// sanitize replaces every byte outside [a-z0-9_.] with an underscore.
// Multi-byte runes become a single underscore.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < unicode.MaxASCII && isAllowed(byte(r)) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isAllowed(c byte) bool {
	return isLower(c) || (c >= '0' && c <= '9') || c == '_' || c == '.'
}

// Rename is one planned normalization step.
type Rename struct {
	Source    string // original file name
	Target    string // normalized file name (empty if Err is a naming error)
	Collision bool   // another source maps to the same original target
	Skip      bool   // not processed under CollisionSkip
	Err       error
}

// PlanRenames computes the target of every name without touching disk.
// names must be in processing order; the plan keeps that order.
func PlanRenames(names []string, prefix string, policy CollisionPolicy) []Rename {
	plan := make([]Rename, len(names))
	groups := make(map[string][]int)
	var order []string

	for i, name := range names {
		target, err := NormalizeName(name, prefix)
		plan[i] = Rename{Source: name, Target: target, Err: err}
		if err != nil {
			continue
		}
		if _, seen := groups[target]; !seen {
			order = append(order, target)
		}
		groups[target] = append(groups[target], i)
	}

	taken := make(map[string]bool, len(groups))
	for target := range groups {
		taken[target] = true
	}

	for _, target := range order {
		members := groups[target]
		if len(members) < 2 {
			continue
		}
		for _, idx := range members {
			plan[idx].Collision = true
		}
		if policy == CollisionOverwrite {
			continue
		}

		keep := collisionWinner(plan, members)
		next := 2
		for _, idx := range members {
			if idx == keep {
				continue
			}
			switch policy {
			case CollisionSkip:
				plan[idx].Skip = true
				plan[idx].Err = fmt.Errorf("%w: %s is kept as %s", ErrNameCollision, plan[keep].Source, target)
			case CollisionSuffix:
				var suffixed string
				suffixed, next = nextFreeName(target, next, taken)
				taken[suffixed] = true
				plan[idx].Target = suffixed
			}
		}
	}

	return plan
}

// collisionWinner picks the member that keeps the plain target name:
// the file already named like the target, otherwise the first one.
func collisionWinner(plan []Rename, members []int) int {
	for _, idx := range members {
		if plan[idx].Source == plan[idx].Target {
			return idx
		}
	}
	return members[0]
}

// nextFreeName returns stem_N.png for the smallest N >= start not in taken.
func nextFreeName(target string, start int, taken map[string]bool) (string, int) {
	stem := strings.TrimSuffix(target, targetExt)
	for n := start; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, targetExt)
		if !taken[candidate] {
			return candidate, n + 1
		}
	}
}
