// Package annotation reads and writes landmark files that sit next to the
// images they describe.
package annotation

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/soocke/landmark-editor/domain/landmark"
)

// DefaultSuffix names the landmark file of img.jpg as img_ldmks.txt.
const DefaultSuffix = "_ldmks.txt"

// DefaultSiblings are removed together with an image.
var DefaultSiblings = []string{"_ldmks.txt", "_bbox.txt"}

// ErrNotFound means the image has no landmark file yet.
var ErrNotFound = fmt.Errorf("landmark file not found: %w", fs.ErrNotExist)

// LandmarkPath strips the extension of imagePath and appends suffix.
func LandmarkPath(imagePath, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return basePath(imagePath) + suffix
}

func basePath(p string) string {
	return strings.TrimSuffix(p, filepath.Ext(p))
}

// Decode parses the landmark text format.
func Decode(r io.Reader) ([]landmark.Point, error) { return landmark.ParseText(r) }

// Encode writes the landmark text format.
func Encode(w io.Writer, pts []landmark.Point) error { return landmark.WriteText(w, pts) }

// Load reads the landmark file at path. A missing file yields an error
// matching ErrNotFound; a malformed one a *landmark.FormatError.
func Load(path string) ([]landmark.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()
	pts, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return pts, nil
}

// Save overwrites path with pts. The data is written to a temporary file in
// the same directory and renamed into place.
func Save(path string, pts []landmark.Point) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if err = Encode(tmp, pts); err != nil {
		tmp.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
