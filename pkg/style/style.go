// Package style turns prompt style descriptors ("bold white",
// "fg:red bg:#0087af underline") into lipgloss styles and renders text
// with them. Descriptors are whitespace-separated tokens: attribute
// names, fg:/bg: prefixed colors, or a bare color which is shorthand
// for fg:.
package style

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/promptline/pkg/errors"
)

// Named colors map to the basic ANSI palette; bright- variants to the
// high-intensity half. Everything else must be a 256-color index or a
// hex value, which lipgloss accepts verbatim.
var namedColors = map[string]string{
	"black":  "0",
	"red":    "1",
	"green":  "2",
	"yellow": "3",
	"blue":   "4",
	"purple": "5",
	"cyan":   "6",
	"white":  "7",

	"bright-black":  "8",
	"bright-red":    "9",
	"bright-green":  "10",
	"bright-yellow": "11",
	"bright-blue":   "12",
	"bright-purple": "13",
	"bright-cyan":   "14",
	"bright-white":  "15",
}

// Compile parses a style descriptor into a lipgloss style bound to the
// given renderer. An empty descriptor or "none" compiles to the
// zero style.
func Compile(r *lipgloss.Renderer, spec string) (lipgloss.Style, error) {
	s := r.NewStyle()

	for _, token := range strings.Fields(spec) {
		token = strings.ToLower(token)
		switch token {
		case "none":
			return r.NewStyle(), nil
		case "bold":
			s = s.Bold(true)
		case "italic":
			s = s.Italic(true)
		case "underline":
			s = s.Underline(true)
		case "dimmed":
			s = s.Faint(true)
		case "inverted":
			s = s.Reverse(true)
		case "blink":
			s = s.Blink(true)
		case "strikethrough":
			s = s.Strikethrough(true)
		default:
			var err error
			s, err = applyColorToken(s, token)
			if err != nil {
				return r.NewStyle(), err
			}
		}
	}
	return s, nil
}

func applyColorToken(s lipgloss.Style, token string) (lipgloss.Style, error) {
	switch {
	case strings.HasPrefix(token, "fg:"):
		c, err := parseColor(strings.TrimPrefix(token, "fg:"))
		if err != nil {
			return s, err
		}
		return s.Foreground(c), nil
	case strings.HasPrefix(token, "bg:"):
		c, err := parseColor(strings.TrimPrefix(token, "bg:"))
		if err != nil {
			return s, err
		}
		return s.Background(c), nil
	default:
		// A bare token is a foreground color.
		c, err := parseColor(token)
		if err != nil {
			return s, err
		}
		return s.Foreground(c), nil
	}
}

func parseColor(name string) (lipgloss.Color, error) {
	if ansi, ok := namedColors[name]; ok {
		return lipgloss.Color(ansi), nil
	}
	if strings.HasPrefix(name, "#") && (len(name) == 7 || len(name) == 4) && isHex(name[1:]) {
		return lipgloss.Color(name), nil
	}
	if isDigits(name) {
		return lipgloss.Color(name), nil
	}
	return "", errors.Newf(errors.ErrStyleParse, "unknown color %q", name)
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return s != ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Apply renders text with the compiled descriptor. It is the style
// hook handed to the template evaluator.
func Apply(r *lipgloss.Renderer, text, spec string) (string, error) {
	s, err := Compile(r, spec)
	if err != nil {
		return "", err
	}
	return s.Render(text), nil
}

// NewRenderer builds a lipgloss renderer for out with an explicitly
// detected color profile. NO_COLOR and non-TTY output both degrade to
// plain text, matching how the prompt behaves when captured by scripts.
func NewRenderer(out *os.File) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(DetectProfile(out))
	return r
}

// DetectProfile determines the color capability to render with.
func DetectProfile(out *os.File) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
