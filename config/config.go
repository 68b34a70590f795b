package config

import (
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// Config is the in-memory representation of a configuration document: the
// schema block with its root directives plus every type, enum and union
// definition. It is what link resolution assembles and the formatter prints.
type Config struct {
	Schema   SchemaDefinition  `json:"schema" yaml:"schema"`
	Server   *Server           `json:"server,omitempty" yaml:"server,omitempty"`
	Upstream *Upstream         `json:"upstream,omitempty" yaml:"upstream,omitempty"`
	Links    []*Link           `json:"links,omitempty" yaml:"links,omitempty"`
	Types    map[string]*Type  `json:"types,omitempty" yaml:"types,omitempty"`
	Enums    map[string]*Enum  `json:"enums,omitempty" yaml:"enums,omitempty"`
	Unions   map[string]*Union `json:"unions,omitempty" yaml:"unions,omitempty"`
}

// SchemaDefinition names the operation root types.
type SchemaDefinition struct {
	Query        string `json:"query,omitempty" yaml:"query,omitempty"`
	Mutation     string `json:"mutation,omitempty" yaml:"mutation,omitempty"`
	Subscription string `json:"subscription,omitempty" yaml:"subscription,omitempty"`
}

// Type is an object or input definition. Fields keep declaration order.
type Type struct {
	Fields     []*Field `json:"fields,omitempty" yaml:"fields,omitempty"`
	Implements []string `json:"implements,omitempty" yaml:"implements,omitempty"`
	Doc        string   `json:"doc,omitempty" yaml:"doc,omitempty"`

	Position *ast.Position `json:"-" yaml:"-"`
}

// Field is a single field of a Type, optionally carrying a resolver
// directive. At most one of Http, GraphQL or Expr is set.
type Field struct {
	Name string  `json:"name" yaml:"name"`
	Type TypeRef `json:"type" yaml:"type"`
	Args []*Arg  `json:"args,omitempty" yaml:"args,omitempty"`

	Http    *Http    `json:"http,omitempty" yaml:"http,omitempty"`
	GraphQL *GraphQL `json:"graphQL,omitempty" yaml:"graphQL,omitempty"`
	Expr    *Expr    `json:"expr,omitempty" yaml:"expr,omitempty"`
	Modify  *Modify  `json:"modify,omitempty" yaml:"modify,omitempty"`
	Omit    bool     `json:"omit,omitempty" yaml:"omit,omitempty"`

	Position *ast.Position `json:"-" yaml:"-"`
}

// Arg is a field argument.
type Arg struct {
	Name    string  `json:"name" yaml:"name"`
	Type    TypeRef `json:"type" yaml:"type"`
	Default string  `json:"default,omitempty" yaml:"default,omitempty"`
}

// TypeRef references a named type with its wrapping markers. It renders as
// Name, Name!, [Name], [Name!] or [Name!]! depending on the flags.
type TypeRef struct {
	Name            string `json:"name" yaml:"name"`
	NonNull         bool   `json:"required,omitempty" yaml:"required,omitempty"`
	List            bool   `json:"list,omitempty" yaml:"list,omitempty"`
	ListItemNonNull bool   `json:"listItemRequired,omitempty" yaml:"listItemRequired,omitempty"`
}

// String renders the reference in SDL syntax.
func (t TypeRef) String() string {
	s := t.Name
	if t.List {
		if t.ListItemNonNull {
			s += "!"
		}
		s = "[" + s + "]"
	}
	if t.NonNull {
		s += "!"
	}
	return s
}

// Enum is an enum definition. Variants keep declaration order within one
// document; merging unions and sorts them.
type Enum struct {
	Variants []string `json:"variants" yaml:"variants"`
	Doc      string   `json:"doc,omitempty" yaml:"doc,omitempty"`

	Position *ast.Position `json:"-" yaml:"-"`
}

// Union is a union definition.
type Union struct {
	Types []string `json:"types" yaml:"types"`
	Doc   string   `json:"doc,omitempty" yaml:"doc,omitempty"`

	Position *ast.Position `json:"-" yaml:"-"`
}

// NewConfig returns an empty config with allocated definition maps.
func NewConfig() *Config {
	return &Config{
		Types:  make(map[string]*Type),
		Enums:  make(map[string]*Enum),
		Unions: make(map[string]*Union),
	}
}

// QueryType returns the query root type, if the schema declares one.
func (c *Config) QueryType() (*Type, bool) {
	if c.Schema.Query == "" {
		return nil, false
	}
	t, ok := c.Types[c.Schema.Query]
	return t, ok
}

// FindField returns the named field of the named type.
func (c *Config) FindField(typename, fieldname string) (*Field, bool) {
	t, ok := c.Types[typename]
	if !ok {
		return nil, false
	}
	return lo.Find(t.Fields, func(f *Field) bool { return f.Name == fieldname })
}

// FindField returns the named field of the type.
func (t *Type) FindField(name string) (*Field, bool) {
	return lo.Find(t.Fields, func(f *Field) bool { return f.Name == name })
}

// IsDefined reports whether name resolves to a type, enum or union.
func (c *Config) IsDefined(name string) bool {
	if _, ok := c.Types[name]; ok {
		return true
	}
	if _, ok := c.Enums[name]; ok {
		return true
	}
	_, ok := c.Unions[name]
	return ok
}

// Resolver returns the resolver directive set on the field, if any.
func (f *Field) Resolver() (Directive, bool) {
	switch {
	case f.Http != nil:
		return f.Http, true
	case f.GraphQL != nil:
		return f.GraphQL, true
	case f.Expr != nil:
		return f.Expr, true
	}
	return nil, false
}
