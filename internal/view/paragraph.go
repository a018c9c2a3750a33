package view

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/ecarlucci/tessera/internal/layout"
	"github.com/ecarlucci/tessera/internal/style"
)

// Paragraph is a static text view. Lines are split on '\n'; with Wrap
// enabled, long lines continue on the next row.
type Paragraph struct {
	text  string
	style style.Style
	title string
	wrap  bool
	box   bool
}

// NewParagraph creates a paragraph showing text with default styling.
func NewParagraph(text string) *Paragraph {
	return &Paragraph{text: text, style: style.Default()}
}

// Style sets the text style.
func (p *Paragraph) Style(s style.Style) *Paragraph {
	p.style = s
	return p
}

// Fg sets the foreground color.
func (p *Paragraph) Fg(c style.Color) *Paragraph {
	p.style = p.style.Fg(c)
	return p
}

// Bg sets the background color.
func (p *Paragraph) Bg(c style.Color) *Paragraph {
	p.style = p.style.Bg(c)
	return p
}

// Wrap enables soft wrapping of long lines.
func (p *Paragraph) Wrap() *Paragraph {
	p.wrap = true
	return p
}

// Box draws a border around the text, with an optional title.
func (p *Paragraph) Box(title string) *Paragraph {
	p.box = true
	p.title = title
	return p
}

// Text returns the paragraph's text.
func (p *Paragraph) Text() string {
	return p.text
}

// SetText replaces the paragraph's text.
func (p *Paragraph) SetText(text string) {
	p.text = text
}

// Render implements View.
func (p *Paragraph) Render(f *Frame, area layout.Rect, _ bool) {
	if !p.style.Background.IsDefault() {
		f.Fill(area, ' ', p.style)
	}
	if p.box {
		area = f.BoxTitle(area, p.title, p.style)
	}
	if area.Empty() {
		return
	}
	y := area.Y
	for _, line := range strings.Split(p.text, "\n") {
		if y >= area.Bottom() {
			return
		}
		if !p.wrap {
			f.DrawText(area, area.X, y, line, p.style)
			y++
			continue
		}
		for _, seg := range wrapLine(line, area.Width) {
			if y >= area.Bottom() {
				return
			}
			f.DrawText(area, area.X, y, seg, p.style)
			y++
		}
	}
}

// wrapLine splits a line into segments at most width columns wide,
// breaking between grapheme clusters.
func wrapLine(line string, width int) []string {
	if width <= 0 {
		return nil
	}
	if uniseg.StringWidth(line) <= width {
		return []string{line}
	}
	var segs []string
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		w := g.Width()
		if used+w > width && used > 0 {
			segs = append(segs, b.String())
			b.Reset()
			used = 0
		}
		b.WriteString(g.Str())
		used += w
	}
	if b.Len() > 0 {
		segs = append(segs, b.String())
	}
	return segs
}
