package ui

import (
	"fmt"
	"strings"

	"bytefit/bytesize"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.invalid {
		b.WriteString(m.styles.Error.Render("not a byte count — enter a plain non-negative integer"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.viewRows())
	return b.String()
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("bytefit — byte size converter")
	sub := m.styles.Subtitle.Render(fmt.Sprintf(
		"system: %s (base %d) • tab: toggle system • esc: quit",
		m.system, m.system.Base()))
	return title + "\n" + sub
}

// viewRows renders the value at every magnitude of the active system, with
// the auto-fit row highlighted.
func (m Model) viewRows() string {
	best := bytesize.Fit(m.value, m.system)

	var b strings.Builder
	for _, mag := range bytesize.Magnitudes() {
		f := bytesize.New(m.system, mag)
		line := fmt.Sprintf("%-4s %24s", f.Unit(), f.Format(m.value))
		if f.Divisor() == best.Divisor() {
			b.WriteString(m.styles.Fit.Render(line + "  ◄ fit"))
		} else {
			b.WriteString(m.styles.Row.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
