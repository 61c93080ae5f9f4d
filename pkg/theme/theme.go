// Package theme holds the visual parameters the widget layer resolves per
// call: a color palette, metric constants, and a closed set of button style
// variants backed by a lookup table. The interaction core itself never
// touches any of this — it only produces the classified state these
// parameters are applied to.
package theme

import "github.com/go-ember/ember/pkg/render"

// Theme is the parameter set for one UI. Values are plain data; widgets
// resolve them once per declaration.
type Theme struct {
	Primary                 render.Color
	OnPrimary               render.Color
	Surface                 render.Color
	OnSurface               render.Color
	SurfaceContainer        render.Color
	SurfaceContainerHigh    render.Color
	SurfaceContainerHighest render.Color
	SecondaryContainer      render.Color
	OnSecondaryContainer    render.Color
	Outline                 render.Color

	// Padding is the default inner padding in pixels.
	Padding float64
	// ButtonHeight is the standard button height.
	ButtonHeight float64
	// TouchTarget is the minimum hit-area dimension.
	TouchTarget float64
	// SliderTrackHeight is the slider track thickness.
	SliderTrackHeight float64
	// ThumbIdle and ThumbPressed are the slider handle diameters.
	ThumbIdle    float64
	ThumbPressed float64
	// FocusRingWidth and FocusRingGap size the keyboard focus ring.
	FocusRingWidth float64
	FocusRingGap   float64

	// FlashDuration is the press-flash length in seconds.
	FlashDuration float64
	// SnapDuration is the track-snap animation length in seconds.
	SnapDuration float64
}

// Default returns the baseline light theme.
func Default() *Theme {
	return &Theme{
		Primary:                 render.RGB(0x67, 0x50, 0xA4),
		OnPrimary:               render.RGB(0xFF, 0xFF, 0xFF),
		Surface:                 render.RGB(0xFE, 0xF7, 0xFF),
		OnSurface:               render.RGB(0x1D, 0x1B, 0x20),
		SurfaceContainer:        render.RGB(0xF3, 0xED, 0xF7),
		SurfaceContainerHigh:    render.RGB(0xEC, 0xE6, 0xF0),
		SurfaceContainerHighest: render.RGB(0xE6, 0xE0, 0xE9),
		SecondaryContainer:      render.RGB(0xE8, 0xDE, 0xF8),
		OnSecondaryContainer:    render.RGB(0x1D, 0x19, 0x2B),
		Outline:                 render.RGB(0x79, 0x74, 0x7E),

		Padding:           8,
		ButtonHeight:      40,
		TouchTarget:       48,
		SliderTrackHeight: 4,
		ThumbIdle:         20,
		ThumbPressed:      28,
		FocusRingWidth:    2,
		FocusRingGap:      2,

		FlashDuration: 0.25,
		SnapDuration:  0.20,
	}
}

// ButtonStyle selects one of the closed set of button variants.
type ButtonStyle int

const (
	// ButtonTonal is the default style.
	ButtonTonal ButtonStyle = iota
	// ButtonFilled is the high-emphasis style.
	ButtonFilled
	// ButtonOutlined is a transparent style with a border.
	ButtonOutlined
	// ButtonText is a transparent style without a border.
	ButtonText
	// ButtonElevated is a raised container style.
	ButtonElevated

	numButtonStyles
)

// ButtonPalette is a resolved set of button colors for one style.
type ButtonPalette struct {
	Background  render.Color
	Text        render.Color
	Border      render.Color
	BorderWidth float64
	// HoverLayer is the translucent overlay blended on hover.
	HoverLayer render.Color
}

// colorSel selects a palette color from a theme.
type colorSel func(*Theme) render.Color

func selTransparent(*Theme) render.Color { return render.Transparent }

// buttonStyleSpec is one row of the style lookup table. The set of styles
// is closed and small, so a table resolved per call replaces any dispatch.
type buttonStyleSpec struct {
	background  colorSel
	text        colorSel
	border      colorSel
	borderWidth float64
	hoverBase   colorSel
	hoverAlpha  uint8
}

var buttonStyles = [numButtonStyles]buttonStyleSpec{
	ButtonTonal: {
		background: func(t *Theme) render.Color { return t.SurfaceContainer },
		text:       func(t *Theme) render.Color { return t.OnSurface },
		border:     selTransparent,
		hoverBase:  func(t *Theme) render.Color { return t.OnSurface },
		hoverAlpha: 0x14,
	},
	ButtonFilled: {
		background: func(t *Theme) render.Color { return t.Primary },
		text:       func(t *Theme) render.Color { return t.OnPrimary },
		border:     selTransparent,
		hoverBase:  func(t *Theme) render.Color { return t.OnPrimary },
		hoverAlpha: 0x14,
	},
	ButtonOutlined: {
		background:  selTransparent,
		text:        func(t *Theme) render.Color { return t.Primary },
		border:      func(t *Theme) render.Color { return t.Outline },
		borderWidth: 1,
		hoverBase:   func(t *Theme) render.Color { return t.Primary },
		hoverAlpha:  0x0A,
	},
	ButtonText: {
		background: selTransparent,
		text:       func(t *Theme) render.Color { return t.Primary },
		border:     selTransparent,
		hoverBase:  func(t *Theme) render.Color { return t.Primary },
		hoverAlpha: 0x0A,
	},
	ButtonElevated: {
		background: func(t *Theme) render.Color { return t.SurfaceContainerHigh },
		text:       func(t *Theme) render.Color { return t.Primary },
		border:     selTransparent,
		hoverBase:  func(t *Theme) render.Color { return t.Primary },
		hoverAlpha: 0x07,
	},
}

// ButtonPalette resolves the colors for a style. Unknown styles resolve as
// ButtonTonal.
func (t *Theme) ButtonPalette(style ButtonStyle) ButtonPalette {
	if style < 0 || style >= numButtonStyles {
		style = ButtonTonal
	}
	spec := buttonStyles[style]
	return ButtonPalette{
		Background:  spec.background(t),
		Text:        spec.text(t),
		Border:      spec.border(t),
		BorderWidth: spec.borderWidth,
		HoverLayer:  render.StateLayer(spec.hoverBase(t), spec.hoverAlpha),
	}
}
