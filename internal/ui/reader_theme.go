package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/wikireflect/wiki-reflection/internal/model"
)

// ReaderTheme is the default theme pinned to one variant, with sizes tuned
// for reading longer text
type ReaderTheme struct {
	variant fyne.ThemeVariant
}

// NewReaderTheme creates a theme for the given variant
func NewReaderTheme(variant fyne.ThemeVariant) fyne.Theme {
	return &ReaderTheme{variant: variant}
}

// ThemeForID returns the theme for "light" or "dark"
func ThemeForID(themeID string) (fyne.Theme, error) {
	switch themeID {
	case model.ThemeLight:
		return NewReaderTheme(theme.VariantLight), nil
	case model.ThemeDark:
		return NewReaderTheme(theme.VariantDark), nil
	default:
		return nil, fmt.Errorf("unknown theme: %q", themeID)
	}
}

// ApplyTheme swaps the theme of app
func ApplyTheme(app fyne.App, themeID string) error {
	t, err := ThemeForID(themeID)
	if err != nil {
		return err
	}
	app.Settings().SetTheme(t)
	return nil
}

// Color returns theme colors; the requested variant is ignored
func (t *ReaderTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameHyperlink:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 100, G: 181, B: 246, A: 255}
		}
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameBackground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 30, G: 30, B: 30, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 230, G: 230, B: 230, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *ReaderTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ReaderTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ReaderTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 15
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 17
	case theme.SizeNameLineSpacing:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}

// Variant returns the pinned variant
func (t *ReaderTheme) Variant() fyne.ThemeVariant {
	return t.variant
}
