package editor

// CaptionStyle holds every user-facing caption presentation setting. The
// fields mirror what the renderer consumes; none of them affect timeline or
// caption timing.
type CaptionStyle struct {
	FontFamily            string  `json:"fontFamily"`
	FontSize              int     `json:"fontSize"`
	TextColor             string  `json:"textColor"`
	FontWeight            int     `json:"fontWeight"`
	FontStyle             string  `json:"fontStyle"`
	TextDecoration        string  `json:"textDecoration"`
	TextTransform         string  `json:"textTransform"`
	LetterSpacing         float64 `json:"letterSpacing"`
	LineHeight            float64 `json:"lineHeight"`
	TextAlign             string  `json:"textAlign"`
	CaptionMaxWidth       int     `json:"captionMaxWidth"`
	TextShadowEnabled     bool    `json:"textShadowEnabled"`
	TextBackgroundEnabled bool    `json:"textBackgroundEnabled"`
	TextBackgroundColor   string  `json:"textBackgroundColor"`
	TextStrokeEnabled     bool    `json:"textStrokeEnabled"`
	TextStrokeColor       string  `json:"textStrokeColor"`
	TextStrokeWidth       int     `json:"textStrokeWidth"`
	CanvasAspectRatio     string  `json:"canvasAspectRatio"`
	CaptionAnimation      string  `json:"captionAnimation"`
	KaraokeEnabled        bool    `json:"karaokeEnabled"`
	KaraokeColor          string  `json:"karaokeColor"`
}

// StyleOverrides is a partial CaptionStyle: nil fields are left untouched
// when merged. Presets carry their changes this way so a preset only states
// what it actually overrides.
type StyleOverrides struct {
	FontFamily            *string  `json:"fontFamily,omitempty"`
	FontSize              *int     `json:"fontSize,omitempty"`
	TextColor             *string  `json:"textColor,omitempty"`
	FontWeight            *int     `json:"fontWeight,omitempty"`
	FontStyle             *string  `json:"fontStyle,omitempty"`
	TextDecoration        *string  `json:"textDecoration,omitempty"`
	TextTransform         *string  `json:"textTransform,omitempty"`
	LetterSpacing         *float64 `json:"letterSpacing,omitempty"`
	LineHeight            *float64 `json:"lineHeight,omitempty"`
	TextAlign             *string  `json:"textAlign,omitempty"`
	CaptionMaxWidth       *int     `json:"captionMaxWidth,omitempty"`
	TextShadowEnabled     *bool    `json:"textShadowEnabled,omitempty"`
	TextBackgroundEnabled *bool    `json:"textBackgroundEnabled,omitempty"`
	TextBackgroundColor   *string  `json:"textBackgroundColor,omitempty"`
	TextStrokeEnabled     *bool    `json:"textStrokeEnabled,omitempty"`
	TextStrokeColor       *string  `json:"textStrokeColor,omitempty"`
	TextStrokeWidth       *int     `json:"textStrokeWidth,omitempty"`
	CanvasAspectRatio     *string  `json:"canvasAspectRatio,omitempty"`
	CaptionAnimation      *string  `json:"captionAnimation,omitempty"`
	KaraokeEnabled        *bool    `json:"karaokeEnabled,omitempty"`
	KaraokeColor          *string  `json:"karaokeColor,omitempty"`
}

// StylePreset is a named bundle of style overrides
type StylePreset struct {
	Name      string         `json:"name"`
	Overrides StyleOverrides `json:"overrides"`
}

// DefaultCaptionStyle returns the style a fresh project starts with
func DefaultCaptionStyle() CaptionStyle {
	return CaptionStyle{
		FontFamily:          "'Manrope', sans-serif",
		FontSize:            48,
		TextColor:           "#FFFFFF",
		FontWeight:          700,
		FontStyle:           "normal",
		TextDecoration:      "none",
		TextTransform:       "none",
		LetterSpacing:       0,
		LineHeight:          1.2,
		TextAlign:           "center",
		CaptionMaxWidth:     90,
		TextShadowEnabled:   true,
		TextBackgroundColor: "rgba(0, 0, 0, 0.5)",
		TextStrokeColor:     "#000000",
		TextStrokeWidth:     2,
		CanvasAspectRatio:   "16:9",
		CaptionAnimation:    "fade",
		KaraokeEnabled:      true,
		KaraokeColor:        "#2563eb",
	}
}

// MergeStyle applies non-nil overrides to a style, field by field. Every
// StyleOverrides field must be handled here; a renamed setting shows up as
// a compile error instead of silently dropping out of presets.
func MergeStyle(style CaptionStyle, o StyleOverrides) CaptionStyle {
	if o.FontFamily != nil {
		style.FontFamily = *o.FontFamily
	}
	if o.FontSize != nil {
		style.FontSize = *o.FontSize
	}
	if o.TextColor != nil {
		style.TextColor = *o.TextColor
	}
	if o.FontWeight != nil {
		style.FontWeight = *o.FontWeight
	}
	if o.FontStyle != nil {
		style.FontStyle = *o.FontStyle
	}
	if o.TextDecoration != nil {
		style.TextDecoration = *o.TextDecoration
	}
	if o.TextTransform != nil {
		style.TextTransform = *o.TextTransform
	}
	if o.LetterSpacing != nil {
		style.LetterSpacing = *o.LetterSpacing
	}
	if o.LineHeight != nil {
		style.LineHeight = *o.LineHeight
	}
	if o.TextAlign != nil {
		style.TextAlign = *o.TextAlign
	}
	if o.CaptionMaxWidth != nil {
		style.CaptionMaxWidth = *o.CaptionMaxWidth
	}
	if o.TextShadowEnabled != nil {
		style.TextShadowEnabled = *o.TextShadowEnabled
	}
	if o.TextBackgroundEnabled != nil {
		style.TextBackgroundEnabled = *o.TextBackgroundEnabled
	}
	if o.TextBackgroundColor != nil {
		style.TextBackgroundColor = *o.TextBackgroundColor
	}
	if o.TextStrokeEnabled != nil {
		style.TextStrokeEnabled = *o.TextStrokeEnabled
	}
	if o.TextStrokeColor != nil {
		style.TextStrokeColor = *o.TextStrokeColor
	}
	if o.TextStrokeWidth != nil {
		style.TextStrokeWidth = *o.TextStrokeWidth
	}
	if o.CanvasAspectRatio != nil {
		style.CanvasAspectRatio = *o.CanvasAspectRatio
	}
	if o.CaptionAnimation != nil {
		style.CaptionAnimation = *o.CaptionAnimation
	}
	if o.KaraokeEnabled != nil {
		style.KaraokeEnabled = *o.KaraokeEnabled
	}
	if o.KaraokeColor != nil {
		style.KaraokeColor = *o.KaraokeColor
	}
	return style
}

// BuiltinPresets returns the bundled style presets
func BuiltinPresets() []StylePreset {
	return []StylePreset{
		{
			Name: "Social Pop",
			Overrides: StyleOverrides{
				FontSize:          intp(56),
				FontWeight:        intp(800),
				TextColor:         strp("#FFFFFF"),
				TextStrokeEnabled: boolp(true),
				TextStrokeColor:   strp("#000000"),
				TextStrokeWidth:   intp(3),
				CaptionAnimation:  strp("pop"),
				KaraokeEnabled:    boolp(true),
				KaraokeColor:      strp("#FFFF00"),
			},
		},
		{
			Name: "Cinematic",
			Overrides: StyleOverrides{
				FontSize:              intp(36),
				FontFamily:            strp("'Roboto', sans-serif"),
				FontWeight:            intp(400),
				TextColor:             strp("#FFFFFF"),
				TextShadowEnabled:     boolp(true),
				TextBackgroundEnabled: boolp(false),
				TextStrokeEnabled:     boolp(false),
				CaptionAnimation:      strp("fade"),
				KaraokeEnabled:        boolp(false),
				TextAlign:             strp("center"),
			},
		},
		{
			Name: "Minimal",
			Overrides: StyleOverrides{
				FontSize:              intp(24),
				FontFamily:            strp("'Inter', sans-serif"),
				FontWeight:            intp(500),
				TextColor:             strp("#FFFFFF"),
				TextShadowEnabled:     boolp(false),
				TextBackgroundEnabled: boolp(false),
				TextStrokeEnabled:     boolp(false),
				CaptionAnimation:      strp("fade"),
				KaraokeEnabled:        boolp(false),
			},
		},
	}
}

// PresetByName finds a bundled preset, case-sensitive
func PresetByName(name string) (StylePreset, bool) {
	for _, p := range BuiltinPresets() {
		if p.Name == name {
			return p, true
		}
	}
	return StylePreset{}, false
}

func strp(v string) *string { return &v }
func intp(v int) *int       { return &v }
func boolp(v bool) *bool    { return &v }
