package config

import (
	"fmt"

	"github.com/buildbuildio/gqlconfig/cfgerrors"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Parse decodes an SDL document into a Config. The name is used in error
// messages only.
func Parse(src []byte, name string) (*Config, error) {
	doc, gerr := parser.ParseSchema(&ast.Source{Name: name, Input: string(src)})
	if gerr != nil {
		return nil, cfgerrors.FormatError(gerr)
	}
	return FromDocument(doc)
}

// FromDocument maps a parsed schema document onto the config model. Unknown
// directives and unsupported definition kinds are reported as errors rather
// than silently dropped.
func FromDocument(doc *ast.SchemaDocument) (*Config, error) {
	c := NewConfig()
	var errs cfgerrors.ErrorList

	schemaDefs := append(ast.SchemaDefinitionList{}, doc.Schema...)
	schemaDefs = append(schemaDefs, doc.SchemaExtension...)
	for _, def := range schemaDefs {
		for _, op := range def.OperationTypes {
			switch op.Operation {
			case ast.Query:
				c.Schema.Query = op.Type
			case ast.Mutation:
				c.Schema.Mutation = op.Type
			case ast.Subscription:
				c.Schema.Subscription = op.Type
			}
		}
		for _, d := range def.Directives {
			if err := c.applySchemaDirective(d); err != nil {
				errs = cfgerrors.ExtendErrorList(errs, err)
			}
		}
	}

	defs := append(ast.DefinitionList{}, doc.Definitions...)
	defs = append(defs, doc.Extensions...)
	for _, def := range defs {
		if err := c.applyDefinition(def); err != nil {
			errs = cfgerrors.ExtendErrorList(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return c, nil
}

func (c *Config) applySchemaDirective(d *ast.Directive) error {
	switch d.Name {
	case "server":
		s, err := serverFromDirective(d)
		if err != nil {
			return directiveError(d, err)
		}
		c.Server = c.Server.merge(s)
	case "upstream":
		u, err := upstreamFromDirective(d)
		if err != nil {
			return directiveError(d, err)
		}
		c.Upstream = c.Upstream.merge(u)
	case "link":
		l, err := linkFromDirective(d)
		if err != nil {
			return directiveError(d, err)
		}
		c.Links = append(c.Links, l)
	default:
		return cfgerrors.NewError(
			cfgerrors.UnsupportedError,
			fmt.Errorf("unsupported schema directive @%s", d.Name),
		)
	}
	return nil
}

func (c *Config) applyDefinition(def *ast.Definition) error {
	switch def.Kind {
	case ast.Object, ast.InputObject, ast.Interface:
		t := &Type{
			Implements: def.Interfaces,
			Doc:        def.Description,
			Position:   def.Position,
		}
		for _, fd := range def.Fields {
			f, err := fieldFromDefinition(fd)
			if err != nil {
				return err
			}
			t.Fields = append(t.Fields, f)
		}
		if existing, ok := c.Types[def.Name]; ok {
			c.Types[def.Name] = existing.merge(t)
		} else {
			c.Types[def.Name] = t
		}
	case ast.Enum:
		e := &Enum{Doc: def.Description, Position: def.Position}
		for _, v := range def.EnumValues {
			e.Variants = append(e.Variants, v.Name)
		}
		if existing, ok := c.Enums[def.Name]; ok {
			c.Enums[def.Name] = existing.merge(e)
		} else {
			c.Enums[def.Name] = e
		}
	case ast.Union:
		u := &Union{Types: def.Types, Doc: def.Description, Position: def.Position}
		if existing, ok := c.Unions[def.Name]; ok {
			c.Unions[def.Name] = existing.merge(u)
		} else {
			c.Unions[def.Name] = u
		}
	default:
		return cfgerrors.NewError(
			cfgerrors.UnsupportedError,
			fmt.Errorf("unsupported definition kind %s for %s", def.Kind, def.Name),
		)
	}
	return nil
}

func fieldFromDefinition(fd *ast.FieldDefinition) (*Field, error) {
	ref, err := typeRefFromType(fd.Type)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", fd.Name, err)
	}

	f := &Field{
		Name:     fd.Name,
		Type:     ref,
		Position: fd.Position,
	}

	for _, ad := range fd.Arguments {
		argRef, err := typeRefFromType(ad.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s, argument %s: %w", fd.Name, ad.Name, err)
		}
		arg := &Arg{Name: ad.Name, Type: argRef}
		if ad.DefaultValue != nil {
			arg.Default = RenderValue(ad.DefaultValue)
		}
		f.Args = append(f.Args, arg)
	}

	for _, d := range fd.Directives {
		if err := f.applyDirective(d); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *Field) applyDirective(d *ast.Directive) error {
	var err error
	switch d.Name {
	case "http":
		f.Http, err = httpFromDirective(d)
	case "graphQL":
		f.GraphQL, err = graphQLFromDirective(d)
	case "expr":
		f.Expr, err = exprFromDirective(d)
	case "modify":
		f.Modify, err = modifyFromDirective(d)
	case "omit":
		f.Omit = true
	default:
		return cfgerrors.NewError(
			cfgerrors.UnsupportedError,
			fmt.Errorf("unsupported field directive @%s on %s", d.Name, f.Name),
		)
	}
	if err != nil {
		return directiveError(d, err)
	}

	var resolvers int
	for _, set := range []bool{f.Http != nil, f.GraphQL != nil, f.Expr != nil} {
		if set {
			resolvers++
		}
	}
	if resolvers > 1 {
		return cfgerrors.NewError(
			cfgerrors.ValidationError,
			fmt.Errorf("field %s has more than one resolver directive", f.Name),
		)
	}
	return nil
}

func directiveError(d *ast.Directive, err error) *cfgerrors.Error {
	cerr := cfgerrors.NewError(cfgerrors.DecodeError, err)
	if d.Position != nil {
		cerr.Locations = []cfgerrors.Location{{Line: d.Position.Line, Column: d.Position.Column}}
		if d.Position.Src != nil {
			cerr.Source = d.Position.Src.Name
		}
	}
	return cerr
}

func typeRefFromType(t *ast.Type) (TypeRef, error) {
	if t.Elem != nil {
		if t.Elem.Elem != nil {
			return TypeRef{}, fmt.Errorf("nested list types are not supported")
		}
		return TypeRef{
			Name:            t.Elem.NamedType,
			List:            true,
			ListItemNonNull: t.Elem.NonNull,
			NonNull:         t.NonNull,
		}, nil
	}
	return TypeRef{Name: t.NamedType, NonNull: t.NonNull}, nil
}
