package segments

import (
	"context"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/promptline/pkg/config"
	"github.com/arthur-debert/promptline/pkg/style"
	"github.com/arthur-debert/promptline/pkg/template"
)

// HostnameSegment shows the machine's hostname.
type HostnameSegment struct {
	cfg      config.HostnameConfig
	renderer *lipgloss.Renderer

	// hostname is swappable for tests.
	hostname func() (string, error)
}

// NewHostnameSegment builds the hostname segment. A nil renderer falls
// back to the lipgloss default.
func NewHostnameSegment(cfg config.HostnameConfig, renderer *lipgloss.Renderer) *HostnameSegment {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return &HostnameSegment{cfg: cfg, renderer: renderer, hostname: os.Hostname}
}

func (s *HostnameSegment) Name() string { return "hostname" }

func (s *HostnameSegment) Render(ctx context.Context) Result {
	if s.cfg.Disabled {
		return Disabled()
	}

	tmpl, err := template.Parse(s.cfg.Format)
	if err != nil {
		return Failed(err)
	}

	name, hostErr := s.hostname()

	output, err := tmpl.Render(template.Evaluator{
		Style: func(v string) (template.Value, bool) {
			if v != "style" {
				return template.Absent, false
			}
			return template.Text(s.cfg.Style), true
		},
		Vars: func(v string) (template.Value, bool) {
			if v != "hostname" {
				return template.Absent, false
			}
			if hostErr != nil || name == "" {
				return template.Absent, true
			}
			return template.Text(name), true
		},
		ApplyStyle: func(text, spec string) (string, error) {
			return style.Apply(s.renderer, text, spec)
		},
	})
	if err != nil {
		return Failed(err)
	}
	return Rendered(output)
}
