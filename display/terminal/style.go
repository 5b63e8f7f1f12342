package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tagColors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
	"gray":    lipgloss.Color("8"),
}

// Stylize interprets lightweight formatting tags in s and returns the text
// styled for the terminal. A color tag such as <red> applies until the next
// color tag or <reset>; <bold>, <italic> and <underline> stack onto the
// current color. Unknown tags are passed through verbatim.
func Stylize(s string) string {
	var out strings.Builder
	style := lipgloss.NewStyle()
	var segment strings.Builder

	flush := func() {
		if segment.Len() > 0 {
			out.WriteString(style.Render(segment.String()))
			segment.Reset()
		}
	}

	for i := 0; i < len(s); {
		open := strings.IndexByte(s[i:], '<')
		if open < 0 {
			segment.WriteString(s[i:])
			break
		}
		open += i
		end := strings.IndexByte(s[open:], '>')
		if end < 0 {
			segment.WriteString(s[i:])
			break
		}
		end += open

		segment.WriteString(s[i:open])
		tag := s[open+1 : end]
		switch {
		case tag == "reset":
			flush()
			style = lipgloss.NewStyle()
		case tag == "bold":
			flush()
			style = style.Bold(true)
		case tag == "italic":
			flush()
			style = style.Italic(true)
		case tag == "underline":
			flush()
			style = style.Underline(true)
		default:
			if color, ok := tagColors[tag]; ok {
				flush()
				style = style.Foreground(color)
			} else {
				// Not a formatting tag. Keep it as literal text.
				segment.WriteString(s[open : end+1])
			}
		}
		i = end + 1
	}
	flush()
	return out.String()
}

// StripTags removes every recognized formatting tag from s without applying
// any styling. Useful for measuring or matching display text.
func StripTags(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); {
		open := strings.IndexByte(s[i:], '<')
		if open < 0 {
			out.WriteString(s[i:])
			break
		}
		open += i
		end := strings.IndexByte(s[open:], '>')
		if end < 0 {
			out.WriteString(s[i:])
			break
		}
		end += open

		out.WriteString(s[i:open])
		tag := s[open+1 : end]
		if _, ok := tagColors[tag]; !ok && tag != "reset" && tag != "bold" && tag != "italic" && tag != "underline" {
			out.WriteString(s[open : end+1])
		}
		i = end + 1
	}
	return out.String()
}
