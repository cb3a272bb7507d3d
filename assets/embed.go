package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// DefaultScheme names the 68-point iBUG annotation layout.
const DefaultScheme = "ibug68"

//go:embed schemes/*.yaml
var schemes embed.FS

// Scheme returns the raw YAML for the named connectivity scheme.
func Scheme(name string) ([]byte, error) {
	if name == "" {
		name = DefaultScheme
	}
	data, err := schemes.ReadFile(path.Join("schemes", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("scheme %q: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("embedded scheme %q is empty", name)
	}
	return data, nil
}

// SchemeNames lists the embedded scheme names.
func SchemeNames() []string {
	entries, err := fs.ReadDir(schemes, "schemes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if n, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, n)
		}
	}
	return names
}
