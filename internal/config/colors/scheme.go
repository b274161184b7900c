package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for prompt selectors, table borders)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - success lines, selected options
	Delete string `yaml:"delete"` // Red - failures, prompt errors

	// Table colors
	Header string `yaml:"header"`
	Border string `yaml:"border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text, NULL cells
	Normal string `yaml:"normal"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.MergeFrom(*preset, false)
}

// MergeFrom copies colors from other. With override set, every non-empty
// value in other wins; otherwise only empty fields of c are filled.
func (c *ColorScheme) MergeFrom(other ColorScheme, override bool) {
	pick := func(dst *string, src string) {
		if src == "" {
			return
		}
		if override || *dst == "" {
			*dst = src
		}
	}

	pick(&c.Preset, other.Preset)
	pick(&c.Accent, other.Accent)
	pick(&c.Create, other.Create)
	pick(&c.Delete, other.Delete)
	pick(&c.Header, other.Header)
	pick(&c.Border, other.Border)
	pick(&c.Title, other.Title)
	pick(&c.Subtle, other.Subtle)
	pick(&c.Normal, other.Normal)
}
