package web

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
)

// Theme is the palette and breakpoints shared by every page.
type Theme struct {
	Colors map[string]string
	Media  map[string]string
}

var DefaultTheme = Theme{
	Colors: map[string]string{
		"heading":       "rgb(24 24 29)",
		"text":          "rgba(29, 29, 29, .8)",
		"white":         "#fff",
		"black":         "#212529",
		"helper":        "#8490ff",
		"bg":            "#F6F8FA",
		"footer_bg":     "#0a1435",
		"btn":           "rgb(98 84 243)",
		"border":        "rgba(98, 84, 243, 0.5)",
		"hr":            "#ffffff",
		"gradient":      "linear-gradient(0deg, rgb(132 144 255) 0%, rgb(98 189 252) 100%)",
		"shadow":        "rgba(0, 0, 0, 0.02) 0px 1px 3px 0px, rgba(27, 31, 35, 0.15) 0px 0px 0px 1px",
		"shadowSupport": "rgba(0, 0, 0, 0.16) 0px 1px 4px",
	},
	Media: map[string]string{
		"mobile": "768px",
		"tab":    "998px",
	},
}

// CSS renders the theme as custom properties on :root, plus the layout
// rules that depend on the breakpoints.
func (t Theme) CSS() template.CSS {
	var b strings.Builder

	b.WriteString(":root {\n")
	writeVars(&b, "color", t.Colors)
	writeVars(&b, "media", t.Media)
	b.WriteString("}\n")

	if mobile, ok := t.Media["mobile"]; ok {
		fmt.Fprintf(&b, "@media (max-width: %s) {\n  nav ul { flex-direction: column; }\n  .grid { grid-template-columns: 1fr; }\n}\n", mobile)
	}
	if tab, ok := t.Media["tab"]; ok {
		fmt.Fprintf(&b, "@media (max-width: %s) {\n  .container { max-width: 100%%; padding: 0 1.6rem; }\n}\n", tab)
	}

	return template.CSS(b.String())
}

func writeVars(b *strings.Builder, prefix string, vars map[string]string) {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(b, "  --%s-%s: %s;\n", prefix, cssName(name), strings.TrimSuffix(vars[name], ";"))
	}
}

// cssName turns footer_bg and shadowSupport into footer-bg and shadow-support.
func cssName(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_':
			b.WriteByte('-')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
