// Package theme maps named widget roles to concrete styles, with
// defaults that can be overridden from configuration.
package theme

import (
	"fmt"

	"github.com/ecarlucci/tessera/internal/style"
	"github.com/ecarlucci/tessera/internal/view"
)

// Settings is the raw, serializable form of a theme. Empty strings keep
// the default for that role. Colors use "#RRGGBB" notation.
type Settings struct {
	Text            string `toml:"text"`
	Placeholder     string `toml:"placeholder"`
	SelectionFg     string `toml:"selection_fg"`
	SelectionBg     string `toml:"selection_bg"`
	BorderFocused   string `toml:"border_focused"`
	BorderUnfocused string `toml:"border_unfocused"`
	Title           string `toml:"title"`
}

// Theme holds the resolved styles for each widget role.
type Theme struct {
	Text            style.Style
	Placeholder     style.Style
	Selection       style.Style
	Caret           style.Style
	BorderFocused   style.Style
	BorderUnfocused style.Style
	Title           style.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Text:            style.Default().Fg(style.ColorWhite),
		Placeholder:     style.Default().Fg(style.ColorDarkGray),
		Selection:       style.Default().Bg(style.ColorBlue).Fg(style.ColorBlack),
		Caret:           style.Default().Reverse(),
		BorderFocused:   style.Default().Fg(style.ColorCyan),
		BorderUnfocused: style.Default().Fg(style.ColorGray),
		Title:           style.Default().Fg(style.ColorWhite).Bold(),
	}
}

// FromSettings resolves settings over the default theme. An invalid
// color string fails the whole resolution.
func FromSettings(s Settings) (Theme, error) {
	th := Default()

	if err := applyFg(&th.Text, "text", s.Text); err != nil {
		return Theme{}, err
	}
	if err := applyFg(&th.Placeholder, "placeholder", s.Placeholder); err != nil {
		return Theme{}, err
	}
	if err := applyFg(&th.Selection, "selection_fg", s.SelectionFg); err != nil {
		return Theme{}, err
	}
	if err := applyBg(&th.Selection, "selection_bg", s.SelectionBg); err != nil {
		return Theme{}, err
	}
	if err := applyFg(&th.BorderFocused, "border_focused", s.BorderFocused); err != nil {
		return Theme{}, err
	}
	if err := applyFg(&th.BorderUnfocused, "border_unfocused", s.BorderUnfocused); err != nil {
		return Theme{}, err
	}
	if err := applyFg(&th.Title, "title", s.Title); err != nil {
		return Theme{}, err
	}

	return th, nil
}

func applyFg(st *style.Style, role, hex string) error {
	if hex == "" {
		return nil
	}
	c, err := style.Hex(hex)
	if err != nil {
		return fmt.Errorf("theme role %s: %w", role, err)
	}
	*st = st.Fg(c)
	return nil
}

func applyBg(st *style.Style, role, hex string) error {
	if hex == "" {
		return nil
	}
	c, err := style.Hex(hex)
	if err != nil {
		return fmt.Errorf("theme role %s: %w", role, err)
	}
	*st = st.Bg(c)
	return nil
}

// ApplyInput styles an input field according to the theme.
func (t Theme) ApplyInput(in *view.InputField) *view.InputField {
	return in.
		StyleFocused(t.Text).
		StyleUnfocused(t.DimmedText()).
		StylePlaceholder(t.Placeholder).
		StyleSelection(t.Selection).
		StyleCaret(t.Caret).
		BorderFocused(t.BorderFocused).
		BorderUnfocused(t.BorderUnfocused)
}

// DimmedText returns the text style for unfocused widgets, derived by
// darkening the themed text color so the relationship holds across
// palettes.
func (t Theme) DimmedText() style.Style {
	fg := t.Text.Foreground
	if fg.IsDefault() {
		return t.Text.Dim()
	}
	return t.Text.Fg(fg.Darken(0.25))
}
