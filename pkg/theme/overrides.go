package theme

import (
	goerrors "errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/render"
)

// Overrides is the optional on-disk theme override file.
type Overrides struct {
	// Durations override the transition timings, in milliseconds.
	Durations struct {
		FlashMS int `yaml:"flash_ms,omitempty"`
		SnapMS  int `yaml:"snap_ms,omitempty"`
	} `yaml:"durations"`

	// Palette maps palette entry names (e.g. "primary") to #RRGGBB hex.
	Palette map[string]string `yaml:"palette"`
}

// LoadOptional reads a theme override file if present. A missing file is
// not an error and yields empty overrides.
func LoadOptional(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if goerrors.Is(err, os.ErrNotExist) {
			return &Overrides{}, nil
		}
		return nil, errors.New("theme.LoadOptional", errors.KindConfig, err)
	}
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, errors.New("theme.LoadOptional", errors.KindConfig, err)
	}
	return &o, nil
}

// Apply writes the overrides onto a theme. Unknown palette names or
// malformed hex values fail without partially corrupting the palette.
func (o *Overrides) Apply(t *Theme) error {
	colors := make(map[string]render.Color, len(o.Palette))
	for name, hex := range o.Palette {
		if _, ok := t.paletteEntry(name); !ok {
			return errors.Newf("theme.Apply", errors.KindConfig,
				"unknown palette entry %q", name)
		}
		c, err := parseHexColor(hex)
		if err != nil {
			return errors.Newf("theme.Apply", errors.KindConfig,
				"palette entry %q: %v", name, err)
		}
		colors[name] = c
	}
	for name, c := range colors {
		slot, _ := t.paletteEntry(name)
		*slot = c
	}
	if o.Durations.FlashMS > 0 {
		t.FlashDuration = float64(o.Durations.FlashMS) / 1000
	}
	if o.Durations.SnapMS > 0 {
		t.SnapDuration = float64(o.Durations.SnapMS) / 1000
	}
	return nil
}

// paletteEntry maps an override name to its palette slot.
func (t *Theme) paletteEntry(name string) (*render.Color, bool) {
	switch name {
	case "primary":
		return &t.Primary, true
	case "onPrimary":
		return &t.OnPrimary, true
	case "surface":
		return &t.Surface, true
	case "onSurface":
		return &t.OnSurface, true
	case "surfaceContainer":
		return &t.SurfaceContainer, true
	case "surfaceContainerHigh":
		return &t.SurfaceContainerHigh, true
	case "surfaceContainerHighest":
		return &t.SurfaceContainerHighest, true
	case "secondaryContainer":
		return &t.SecondaryContainer, true
	case "onSecondaryContainer":
		return &t.OnSecondaryContainer, true
	case "outline":
		return &t.Outline, true
	default:
		return nil, false
	}
}

// parseHexColor parses #RRGGBB or #AARRGGBB.
func parseHexColor(s string) (render.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q", s)
		}
		return render.Color(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q", s)
		}
		return render.Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("invalid hex color %q", s)
	}
}
