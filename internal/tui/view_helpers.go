package tui

import (
	"strings"
)

const (
	appHeader = "Enquete para Desenvolvedores"
	appFooter = "Enquete · pesquisas para pessoas desenvolvedoras"
	uiDivider = "──────────────────────────────────────────────────────"
)

// renderPage lays out a page between the shared header and footer.
func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(appHeader))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: sair"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(appFooter))

	return b.String()
}

// focusMarker prefixes the focused element of a form.
func focusMarker(focused bool) string {
	if focused {
		return focusedStyle.Render(">") + " "
	}
	return "  "
}
