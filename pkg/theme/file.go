package theme

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/slidesmith/slidesmith/pkg/errors"
)

// fileTheme is the on-disk TOML representation. Colors are written as
// hex strings or "r,g,b" triples; fonts as inline tables.
//
//	name = "corporate"
//
//	[colors]
//	primary = "#1f3864"
//	accent = "217,83,25"
//
//	[fonts.body]
//	name = "Arial"
//	size = 16
type fileTheme struct {
	Name   string            `toml:"name"`
	Colors map[string]string `toml:"colors"`
	Fonts  map[string]Font   `toml:"fonts"`
}

// LoadFile reads a TOML theme file and merges it over the default theme.
// Tags absent from the file keep their default values.
func LoadFile(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeConfigFile, err, "open theme %s", path)
	}
	defer f.Close()
	t, err := Read(f)
	if err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeConfigFile, err, "load theme %s", path)
	}
	return t, nil
}

// Read decodes a TOML theme from r and merges it over the default theme.
func Read(r io.Reader) (Theme, error) {
	var ft fileTheme
	if _, err := toml.NewDecoder(r).Decode(&ft); err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeConfigFile, err, "decode theme")
	}

	base := Default()
	over := Theme{Name: ft.Name, Colors: map[string]RGB{}, Fonts: ft.Fonts}

	for tag, val := range ft.Colors {
		if c, ok := parseHex(val); ok {
			over.Colors[tag] = c
			continue
		}
		if c, ok := parseTriple(val); ok {
			over.Colors[tag] = c
			continue
		}
		return Theme{}, errors.New(errors.ErrCodeConfigColor, "color %q for tag %q is not a hex string or r,g,b triple", val, tag)
	}

	return base.Merge(over), nil
}
