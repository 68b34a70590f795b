package config

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Http resolves a field by calling a REST endpoint. Path and value templates
// use mustache-style placeholders ({{.value.userId}}, {{.args.id}}) which are
// carried verbatim; the formatter never interprets them.
type Http struct {
	Method  string     `json:"method,omitempty" yaml:"method,omitempty"`
	Path    string     `json:"path" yaml:"path"`
	Query   []KeyValue `json:"query,omitempty" yaml:"query,omitempty"`
	Body    *string    `json:"body,omitempty" yaml:"body,omitempty"`
	BaseURL *string    `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`
	Headers []KeyValue `json:"headers,omitempty" yaml:"headers,omitempty"`
}

func (h *Http) DirectiveName() string { return "http" }

func (h *Http) DirectiveArgs() []DirectiveArg {
	var args []DirectiveArg
	if h.BaseURL != nil {
		args = append(args, DirectiveArg{"baseURL", renderString(*h.BaseURL)})
	}
	if h.Body != nil {
		args = append(args, DirectiveArg{"body", renderString(*h.Body)})
	}
	if len(h.Headers) > 0 {
		args = append(args, DirectiveArg{"headers", renderKeyValues(h.Headers)})
	}
	if h.Method != "" && h.Method != "GET" {
		args = append(args, DirectiveArg{"method", h.Method})
	}
	args = append(args, DirectiveArg{"path", renderString(h.Path)})
	if len(h.Query) > 0 {
		args = append(args, DirectiveArg{"query", renderKeyValues(h.Query)})
	}
	return args
}

func httpFromDirective(d *ast.Directive) (*Http, error) {
	h := &Http{}
	if err := decodeStringPtr(d, "baseURL", &h.BaseURL); err != nil {
		return nil, err
	}
	if err := decodeStringPtr(d, "body", &h.Body); err != nil {
		return nil, err
	}
	if err := decodeKeyValues(d, "headers", &h.Headers); err != nil {
		return nil, err
	}
	if err := decodeEnum(d, "method", &h.Method); err != nil {
		return nil, err
	}
	if err := decodeString(d, "path", &h.Path); err != nil {
		return nil, err
	}
	if err := decodeKeyValues(d, "query", &h.Query); err != nil {
		return nil, err
	}
	return h, nil
}

// GraphQL resolves a field by issuing a query against another GraphQL API.
type GraphQL struct {
	Name    string     `json:"name" yaml:"name"`
	URL     *string    `json:"url,omitempty" yaml:"url,omitempty"`
	Args    []KeyValue `json:"args,omitempty" yaml:"args,omitempty"`
	Headers []KeyValue `json:"headers,omitempty" yaml:"headers,omitempty"`
	Batch   bool       `json:"batch,omitempty" yaml:"batch,omitempty"`
}

func (g *GraphQL) DirectiveName() string { return "graphQL" }

func (g *GraphQL) DirectiveArgs() []DirectiveArg {
	var args []DirectiveArg
	if len(g.Args) > 0 {
		args = append(args, DirectiveArg{"args", renderKeyValues(g.Args)})
	}
	if g.Batch {
		args = append(args, DirectiveArg{"batch", "true"})
	}
	if len(g.Headers) > 0 {
		args = append(args, DirectiveArg{"headers", renderKeyValues(g.Headers)})
	}
	args = append(args, DirectiveArg{"name", renderString(g.Name)})
	if g.URL != nil {
		args = append(args, DirectiveArg{"url", renderString(*g.URL)})
	}
	return args
}

func graphQLFromDirective(d *ast.Directive) (*GraphQL, error) {
	g := &GraphQL{}
	if err := decodeKeyValues(d, "args", &g.Args); err != nil {
		return nil, err
	}
	if err := decodeBool(d, "batch", &g.Batch); err != nil {
		return nil, err
	}
	if err := decodeKeyValues(d, "headers", &g.Headers); err != nil {
		return nil, err
	}
	if err := decodeString(d, "name", &g.Name); err != nil {
		return nil, err
	}
	if err := decodeStringPtr(d, "url", &g.URL); err != nil {
		return nil, err
	}
	return g, nil
}

// Modify renames a field in the exposed schema without touching the
// upstream name it resolves against.
type Modify struct {
	Name string `json:"name" yaml:"name"`
}

func (m *Modify) DirectiveName() string { return "modify" }

func (m *Modify) DirectiveArgs() []DirectiveArg {
	return []DirectiveArg{{"name", renderString(m.Name)}}
}

func modifyFromDirective(d *ast.Directive) (*Modify, error) {
	m := &Modify{}
	if err := decodeString(d, "name", &m.Name); err != nil {
		return nil, err
	}
	if m.Name == "" {
		return nil, argTypeError(d, "name", "a non-empty string")
	}
	return m, nil
}

// Expr resolves a field to a constant. The body literal is kept verbatim.
type Expr struct {
	Body string `json:"body" yaml:"body"`
}

func (e *Expr) DirectiveName() string { return "expr" }

func (e *Expr) DirectiveArgs() []DirectiveArg {
	return []DirectiveArg{{"body", e.Body}}
}

func exprFromDirective(d *ast.Directive) (*Expr, error) {
	arg := d.Arguments.ForName("body")
	if arg == nil {
		return nil, argTypeError(d, "body", "a literal")
	}
	return &Expr{Body: RenderValue(arg.Value)}, nil
}
