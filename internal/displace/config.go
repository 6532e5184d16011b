package displace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default category names.
const (
	CategoryBlue = "BLUE"
	CategoryRed  = "RED"
)

// CategoryConfig describes one category before its displacement set is
// built.
type CategoryConfig struct {
	Name     string
	Ranges   []Range
	Geometry Geometry
}

// Config is the immutable run configuration: the ordered category list
// (priority order) and the fallback index. It is constructed once at
// startup and passed by reference into the engine; nothing mutates it
// afterwards.
type Config struct {
	Categories []CategoryConfig
	Fallback   int
}

// Default returns the built-in configuration: BLUE claims keys 1-99, RED
// claims 100-199 with radial offsets mirrored about the x-axis, and RED is
// the fallback for digit-free labels and unmatched keys.
func Default() Config {
	return Config{
		Categories: []CategoryConfig{
			{
				Name:     CategoryBlue,
				Ranges:   []Range{{Lo: 1, Hi: 99}},
				Geometry: DefaultGeometry(false),
			},
			{
				Name:     CategoryRed,
				Ranges:   []Range{{Lo: 100, Hi: 199}},
				Geometry: DefaultGeometry(true),
			},
		},
		Fallback: 1,
	}
}

// Table builds the resolution table, constructing each category's
// displacement set from its geometry. Ranges are copied verbatim; no
// validation of orientation or overlap is performed.
func (c Config) Table() Table {
	t := Table{
		Categories: make([]Category, len(c.Categories)),
		Fallback:   c.Fallback,
	}
	for i, cc := range c.Categories {
		t.Categories[i] = Category{
			Name:   cc.Name,
			Ranges: cc.Ranges,
			Set:    cc.Geometry.Build(),
		}
	}
	return t
}

// FileConfig is the JSON override schema. All fields are optional; fields
// omitted from the file retain their defaults, so partial configs are
// safe.
type FileConfig struct {
	// Geometry overrides, applied to every category.
	DiagonalBaseMM    *float64    `json:"diagonal_base_mm,omitempty"`
	RadialMagnitudeMM *float64    `json:"radial_magnitude_mm,omitempty"`
	RadialAnglesDeg   *[3]float64 `json:"radial_angles_deg,omitempty"`

	// Category overrides. When present, replaces the whole category list
	// in declaration (priority) order.
	Categories []FileCategory `json:"categories,omitempty"`

	// Fallback category, by name.
	Fallback *string `json:"fallback,omitempty"`
}

// FileCategory is one category in the JSON override file. Ranges are
// [lo, hi] pairs, bounds inclusive.
type FileCategory struct {
	Name    string     `json:"name"`
	Ranges  [][2]int64 `json:"ranges"`
	MirrorY bool       `json:"mirror_y"`
}

// LoadConfig reads a FileConfig from a JSON file. The path must have a
// .json extension and the file must be under 1MB.
func LoadConfig(path string) (*FileConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", cleanPath, err)
	}
	return &fc, nil
}

// Apply folds the file overrides into cfg. Category and geometry
// replacement happens before the fallback name is resolved, so a config
// file can both define new categories and pick one of them as fallback.
func (fc *FileConfig) Apply(cfg *Config) error {
	if len(fc.Categories) > 0 {
		cats := make([]CategoryConfig, len(fc.Categories))
		for i, c := range fc.Categories {
			if c.Name == "" {
				return fmt.Errorf("category %d: name is required", i)
			}
			ranges := make([]Range, len(c.Ranges))
			for j, r := range c.Ranges {
				ranges[j] = Range{Lo: r[0], Hi: r[1]}
			}
			cats[i] = CategoryConfig{
				Name:     c.Name,
				Ranges:   ranges,
				Geometry: DefaultGeometry(c.MirrorY),
			}
		}
		cfg.Categories = cats
		// The old fallback index may be stale; default to the last
		// category until (or unless) a fallback name is given.
		cfg.Fallback = len(cats) - 1
	}

	for i := range cfg.Categories {
		g := &cfg.Categories[i].Geometry
		if fc.DiagonalBaseMM != nil {
			g.DiagonalBase = *fc.DiagonalBaseMM
		}
		if fc.RadialMagnitudeMM != nil {
			g.RadialMagnitude = *fc.RadialMagnitudeMM
		}
		if fc.RadialAnglesDeg != nil {
			g.RadialAngles = *fc.RadialAnglesDeg
		}
	}

	if fc.Fallback != nil {
		idx := -1
		for i, c := range cfg.Categories {
			if c.Name == *fc.Fallback {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("fallback category %q not defined", *fc.Fallback)
		}
		cfg.Fallback = idx
	}
	return nil
}
