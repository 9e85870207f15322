// Package prompt assembles the final prompt string from the
// configured segments. Segment failures are logged and swallowed: the
// shell always gets a prompt, never a stack trace.
package prompt

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/promptline/pkg/config"
	"github.com/arthur-debert/promptline/pkg/logging"
	"github.com/arthur-debert/promptline/pkg/platform"
	"github.com/arthur-debert/promptline/pkg/segments"
	"github.com/arthur-debert/promptline/pkg/style"
	"github.com/arthur-debert/promptline/pkg/template"
)

// Renderer evaluates the top-level format, dispatching one variable
// per segment name.
type Renderer struct {
	cfg      *config.Config
	renderer *lipgloss.Renderer
	segments map[string]segments.Segment
}

// NewRenderer wires the configured segments. A nil cfg uses the
// built-in defaults; a nil reader uses live system detection; a nil
// lipgloss renderer uses the default one.
func NewRenderer(cfg *config.Config, reader platform.Reader, lr *lipgloss.Renderer) *Renderer {
	if cfg == nil {
		cfg = config.Default()
	}
	if reader == nil {
		reader = platform.SystemReader{}
	}
	if lr == nil {
		lr = lipgloss.DefaultRenderer()
	}

	all := []segments.Segment{
		segments.NewOSSegment(cfg.OS, reader, lr),
		segments.NewHostnameSegment(cfg.Hostname, lr),
	}
	byName := make(map[string]segments.Segment, len(all))
	for _, s := range all {
		byName[s.Name()] = s
	}

	return &Renderer{cfg: cfg, renderer: lr, segments: byName}
}

// Render produces the prompt. Errors never escape: a broken top-level
// format yields an empty prompt, a broken segment just disappears.
func (r *Renderer) Render(ctx context.Context) string {
	logger := logging.GetLogger("prompt")

	tmpl, err := template.Parse(r.cfg.Format)
	if err != nil {
		logger.Warn().Err(err).Str("format", r.cfg.Format).Msg("Invalid prompt format")
		return ""
	}

	out, err := tmpl.Render(template.Evaluator{
		Vars: func(name string) (template.Value, bool) {
			seg, ok := r.segments[name]
			if !ok {
				logger.Warn().Str("segment", name).Msg("Unknown segment in prompt format")
				return template.Absent, true
			}

			logger.Trace().
				Str("segment", name).
				Str("status", segments.StatusRendering.String()).
				Msg("Rendering segment")
			res := seg.Render(ctx)

			switch res.Status {
			case segments.StatusRendered:
				return template.Text(res.Output), true
			case segments.StatusFailed:
				logger.Warn().Err(res.Err).Str("segment", name).Msg("Segment failed, omitting from prompt")
				return template.Absent, true
			default:
				return template.Absent, true
			}
		},
		ApplyStyle: func(text, spec string) (string, error) {
			return style.Apply(r.renderer, text, spec)
		},
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Prompt evaluation failed")
		return ""
	}
	return out
}
