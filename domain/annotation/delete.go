package annotation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DeleteError reports one file that could not be removed.
type DeleteError struct {
	Path string
	Err  error
}

func (e *DeleteError) Error() string { return fmt.Sprintf("delete %s: %v", e.Path, e.Err) }

func (e *DeleteError) Unwrap() error { return e.Err }

// Siblings returns the files that share imagePath's base name, one per
// suffix. Duplicate suffixes are collapsed.
func Siblings(imagePath string, suffixes []string) []string {
	base := basePath(imagePath)
	seen := make(map[string]bool, len(suffixes))
	out := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, base+s)
	}
	return out
}

// Delete removes imagePath and its siblings. Every removal is attempted; the
// returned slice holds one *DeleteError per failure. A missing image is an
// error, a missing sibling is not.
func Delete(imagePath string, suffixes []string) []error {
	var errs []error
	if err := os.Remove(imagePath); err != nil {
		errs = append(errs, &DeleteError{Path: imagePath, Err: err})
	}
	for _, p := range Siblings(imagePath, suffixes) {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, &DeleteError{Path: p, Err: err})
		}
	}
	return errs
}
