package theme

import (
	"testing"

	"github.com/ecarlucci/tessera/internal/style"
)

func TestDefaultTheme(t *testing.T) {
	th := Default()
	if th.Text.Foreground != style.ColorWhite {
		t.Errorf("text fg = %+v", th.Text.Foreground)
	}
	if !th.Caret.Attributes.Has(style.AttrReverse) {
		t.Error("caret style should be reverse video")
	}
}

func TestFromSettingsOverrides(t *testing.T) {
	th, err := FromSettings(Settings{
		Text:        "#ff0000",
		SelectionBg: "#00ff00",
	})
	if err != nil {
		t.Fatalf("FromSettings: %v", err)
	}
	if th.Text.Foreground != style.RGB(255, 0, 0) {
		t.Errorf("text fg = %+v", th.Text.Foreground)
	}
	if th.Selection.Background != style.RGB(0, 255, 0) {
		t.Errorf("selection bg = %+v", th.Selection.Background)
	}
	// Untouched roles keep their defaults.
	if th.Placeholder != Default().Placeholder {
		t.Error("placeholder should stay default")
	}
}

func TestFromSettingsRejectsBadColor(t *testing.T) {
	if _, err := FromSettings(Settings{Text: "red"}); err == nil {
		t.Fatal("expected error for non-hex color")
	}
}

func TestDimmedText(t *testing.T) {
	th := Default()
	dim := th.DimmedText()
	if dim.Foreground.R >= th.Text.Foreground.R {
		t.Errorf("dimmed fg %+v not darker than %+v", dim.Foreground, th.Text.Foreground)
	}

	// Terminal-default text falls back to the dim attribute.
	th.Text = style.Default()
	if !th.DimmedText().Attributes.Has(style.AttrDim) {
		t.Error("default-colored text should dim via the attribute")
	}
}
