// Package template implements promptline's format-string language.
//
// A format string mixes plain text with three constructs:
//
//	$variable          substituted through the evaluator's resolvers
//	[ ... ]( style )   a text group rendered with the given style
//	( ... )            a conditional group, emitted only when at least
//	                   one variable inside it resolved to a value
//
// Backslash escapes any of \ $ [ ] ( ). The style spec may itself
// reference variables, resolved through the dedicated style resolver.
package template

import (
	"strings"

	"github.com/arthur-debert/promptline/pkg/errors"
)

// Value is the outcome of resolving a variable: either present text
// (possibly empty, which is still a value) or absent. Absence is a
// first-class outcome, not an error; the construct referencing the
// variable is simply omitted.
type Value struct {
	Text    string
	Present bool
}

// Text returns a present Value holding s.
func Text(s string) Value {
	return Value{Text: s, Present: true}
}

// Absent is the "no value" outcome.
var Absent = Value{}

// Resolver maps a variable name to its value. The second return
// reports whether the resolver recognizes the name at all; a
// recognized name may still resolve to Absent.
type Resolver func(name string) (Value, bool)

// Evaluator supplies the hooks a Template needs to render. Meta is
// consulted before Vars for ordinary variables; Style resolves
// variables inside style specs. ApplyStyle turns (text, styleSpec)
// into styled output and may be nil when no styling is wanted.
type Evaluator struct {
	Meta       Resolver
	Style      Resolver
	Vars       Resolver
	ApplyStyle func(text, style string) (string, error)
}

// node kinds
type node interface{}

type textNode string

type variableNode string

type groupNode struct {
	children []node
	style    []node
}

type condNode struct {
	children []node
}

// Template is a parsed format string, reusable across renders.
type Template struct {
	nodes []node
}

// Parse compiles a format string. Errors carry the TEMPLATE_PARSE code
// and the offending position.
func Parse(format string) (*Template, error) {
	p := &parser{input: []rune(format)}
	nodes, err := p.parseNodes(0)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.input) {
		return nil, errors.Newf(errors.ErrTemplateParse,
			"unexpected %q at position %d", string(p.input[p.pos]), p.pos)
	}
	return &Template{nodes: nodes}, nil
}

type parser struct {
	input []rune
	pos   int
}

// parseNodes consumes nodes until end of input or an unmatched closing
// delimiter. depth tracks group nesting so closers at depth 0 are
// reported as errors instead of silently swallowed.
func (p *parser) parseNodes(depth int) ([]node, error) {
	var nodes []node
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, textNode(text.String()))
			text.Reset()
		}
	}

	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch c {
		case '\\':
			p.pos++
			if p.pos >= len(p.input) {
				return nil, errors.Newf(errors.ErrTemplateParse,
					"dangling escape at position %d", p.pos-1)
			}
			text.WriteRune(p.input[p.pos])
			p.pos++
		case '$':
			flush()
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, v)
		case '[':
			flush()
			g, err := p.parseGroup(depth)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, g)
		case '(':
			flush()
			p.pos++ // consume '('
			children, err := p.parseNodes(depth + 1)
			if err != nil {
				return nil, err
			}
			if err := p.expect(')'); err != nil {
				return nil, err
			}
			nodes = append(nodes, condNode{children: children})
		case ']', ')':
			if depth == 0 {
				return nil, errors.Newf(errors.ErrTemplateParse,
					"unmatched %q at position %d", string(c), p.pos)
			}
			flush()
			return nodes, nil
		default:
			text.WriteRune(c)
			p.pos++
		}
	}

	if depth > 0 {
		return nil, errors.New(errors.ErrTemplateParse, "unclosed group at end of format")
	}
	flush()
	return nodes, nil
}

func (p *parser) parseVariable() (variableNode, error) {
	start := p.pos
	p.pos++ // consume '$'
	var name strings.Builder
	for p.pos < len(p.input) && isNameRune(p.input[p.pos]) {
		name.WriteRune(p.input[p.pos])
		p.pos++
	}
	if name.Len() == 0 {
		return "", errors.Newf(errors.ErrTemplateParse,
			"expected variable name after '$' at position %d", start)
	}
	return variableNode(name.String()), nil
}

func (p *parser) parseGroup(depth int) (groupNode, error) {
	p.pos++ // consume '['
	children, err := p.parseNodes(depth + 1)
	if err != nil {
		return groupNode{}, err
	}
	if err := p.expect(']'); err != nil {
		return groupNode{}, err
	}

	var style []node
	if p.pos < len(p.input) && p.input[p.pos] == '(' {
		p.pos++ // consume '('
		style, err = p.parseNodes(depth + 1)
		if err != nil {
			return groupNode{}, err
		}
		if err := p.expect(')'); err != nil {
			return groupNode{}, err
		}
	}
	return groupNode{children: children, style: style}, nil
}

func (p *parser) expect(c rune) error {
	if p.pos >= len(p.input) || p.input[p.pos] != c {
		return errors.Newf(errors.ErrTemplateParse,
			"expected %q at position %d", string(c), p.pos)
	}
	p.pos++
	return nil
}

func isNameRune(c rune) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// Render evaluates the template. Variables no resolver recognizes
// produce a TEMPLATE_EVAL error; variables that resolve to Absent drop
// out silently and suppress any conditional group that contains only
// absent variables.
func (t *Template) Render(ev Evaluator) (string, error) {
	out, _, err := renderNodes(t.nodes, ev)
	return out, err
}

// renderNodes returns the rendered text and whether any variable in
// the subtree resolved to a present value.
func renderNodes(nodes []node, ev Evaluator) (string, bool, error) {
	var out strings.Builder
	present := false

	for _, n := range nodes {
		switch n := n.(type) {
		case textNode:
			out.WriteString(string(n))
		case variableNode:
			v, err := resolveVariable(string(n), ev)
			if err != nil {
				return "", false, err
			}
			if v.Present {
				present = true
				out.WriteString(v.Text)
			}
		case condNode:
			inner, innerPresent, err := renderNodes(n.children, ev)
			if err != nil {
				return "", false, err
			}
			if innerPresent {
				present = true
				out.WriteString(inner)
			}
		case groupNode:
			inner, innerPresent, err := renderNodes(n.children, ev)
			if err != nil {
				return "", false, err
			}
			present = present || innerPresent
			styled, err := applyGroupStyle(inner, n.style, ev)
			if err != nil {
				return "", false, err
			}
			out.WriteString(styled)
		default:
			return "", false, errors.Newf(errors.ErrTemplateEval,
				"internal: unknown node %T", n)
		}
	}
	return out.String(), present, nil
}

func resolveVariable(name string, ev Evaluator) (Value, error) {
	if ev.Meta != nil {
		if v, ok := ev.Meta(name); ok {
			return v, nil
		}
	}
	if ev.Vars != nil {
		if v, ok := ev.Vars(name); ok {
			return v, nil
		}
	}
	return Absent, errors.Newf(errors.ErrTemplateEval,
		"unsupported variable %q", name)
}

func applyGroupStyle(text string, style []node, ev Evaluator) (string, error) {
	if len(style) == 0 {
		return text, nil
	}
	spec, err := renderStyleSpec(style, ev)
	if err != nil {
		return "", err
	}
	if ev.ApplyStyle == nil || spec == "" {
		return text, nil
	}
	styled, err := ev.ApplyStyle(text, spec)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateEval,
			"applying style %q", spec)
	}
	return styled, nil
}

// renderStyleSpec evaluates the node list of a style spec. Only text
// and variables make sense here; nested groups inside a style spec are
// rejected.
func renderStyleSpec(nodes []node, ev Evaluator) (string, error) {
	var out strings.Builder
	for _, n := range nodes {
		switch n := n.(type) {
		case textNode:
			out.WriteString(string(n))
		case variableNode:
			if ev.Style == nil {
				return "", errors.Newf(errors.ErrTemplateEval,
					"unsupported style variable %q", string(n))
			}
			v, ok := ev.Style(string(n))
			if !ok {
				return "", errors.Newf(errors.ErrTemplateEval,
					"unsupported style variable %q", string(n))
			}
			if v.Present {
				out.WriteString(v.Text)
			}
		default:
			return "", errors.New(errors.ErrTemplateEval,
				"groups are not allowed inside a style spec")
		}
	}
	return out.String(), nil
}
