package segments

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/promptline/pkg/config"
	"github.com/arthur-debert/promptline/pkg/platform"
	"github.com/arthur-debert/promptline/pkg/style"
	"github.com/arthur-debert/promptline/pkg/template"
)

// OSSegment shows the host operating system: a configurable symbol
// plus optional attributes (bitness, codename, edition, name, type,
// version) exposed as template variables.
type OSSegment struct {
	cfg      config.OSConfig
	reader   platform.Reader
	renderer *lipgloss.Renderer
}

// NewOSSegment builds the os segment. reader supplies the platform
// descriptor; it is queried once per render and only when the segment
// is enabled. A nil renderer falls back to the lipgloss default.
func NewOSSegment(cfg config.OSConfig, reader platform.Reader, renderer *lipgloss.Renderer) *OSSegment {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return &OSSegment{cfg: cfg, reader: reader, renderer: renderer}
}

func (s *OSSegment) Name() string { return "os" }

// Render walks the segment through its lifecycle: the disabled check
// short-circuits before any platform query, and any template error
// fails just this segment.
func (s *OSSegment) Render(ctx context.Context) Result {
	if s.cfg.Disabled {
		return Disabled()
	}

	tmpl, err := template.Parse(s.cfg.Format)
	if err != nil {
		return Failed(err)
	}

	descriptor := s.reader.Descriptor(ctx)
	overrides := NewSymbolTableFromMap(s.cfg.Symbols)

	output, err := tmpl.Render(s.evaluator(descriptor, overrides))
	if err != nil {
		return Failed(err)
	}
	return Rendered(output)
}

func (s *OSSegment) evaluator(d platform.Descriptor, overrides *SymbolTable) template.Evaluator {
	return template.Evaluator{
		Meta: func(name string) (template.Value, bool) {
			if name != "symbol" {
				return template.Absent, false
			}
			if symbol, ok := symbolFor(d.Type, overrides); ok {
				// An empty override is a deliberate "no symbol"
				// and stays a present value.
				return template.Text(symbol), true
			}
			return template.Absent, true
		},
		Style: func(name string) (template.Value, bool) {
			if name != "style" {
				return template.Absent, false
			}
			return template.Text(s.cfg.Style), true
		},
		Vars: func(name string) (template.Value, bool) {
			switch name {
			case "bitness":
				if d.Bitness == platform.BitnessUnknown {
					return template.Absent, true
				}
				return template.Text(d.Bitness.String()), true
			case "codename":
				return optionalText(d.Codename), true
			case "edition":
				return optionalText(d.Edition), true
			case "name":
				return template.Text(d.Type.DisplayName()), true
			case "type":
				return template.Text(d.Type.String()), true
			case "version":
				return optionalText(d.Version), true
			default:
				return template.Absent, false
			}
		},
		ApplyStyle: func(text, spec string) (string, error) {
			return style.Apply(s.renderer, text, spec)
		},
	}
}

// optionalText treats the empty string as the reader's "not supplied"
// sentinel.
func optionalText(s string) template.Value {
	if s == "" {
		return template.Absent
	}
	return template.Text(s)
}
