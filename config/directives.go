package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// Directive is implemented by config fragments that round-trip through a
// schema directive: @server, @upstream, @link and the field resolvers.
type Directive interface {
	DirectiveName() string
	// DirectiveArgs returns the arguments in their canonical key order with
	// values already rendered in literal syntax. Unset options are omitted.
	DirectiveArgs() []DirectiveArg
}

// DirectiveArg is a single rendered directive argument.
type DirectiveArg struct {
	Name  string
	Value string
}

// KeyValue is an ordered key/value pair, rendered as {key: "k", value: "v"}.
type KeyValue struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// RenderValue renders a parsed value back into literal syntax: strings
// quoted, objects braced, lists bracketed, everything else verbatim.
func RenderValue(v *ast.Value) string {
	if v == nil {
		return "null"
	}
	switch v.Kind {
	case ast.StringValue, ast.BlockValue:
		return strconv.Quote(v.Raw)
	case ast.ListValue:
		inner := make([]string, len(v.Children))
		for i, c := range v.Children {
			inner[i] = RenderValue(c.Value)
		}
		return "[" + strings.Join(inner, ", ") + "]"
	case ast.ObjectValue:
		inner := make([]string, len(v.Children))
		for i, c := range v.Children {
			inner[i] = c.Name + ": " + RenderValue(c.Value)
		}
		return "{" + strings.Join(inner, ", ") + "}"
	default:
		return v.Raw
	}
}

func renderString(s string) string {
	return strconv.Quote(s)
}

func renderStrings(values []string) string {
	inner := make([]string, len(values))
	for i, v := range values {
		inner[i] = renderString(v)
	}
	return "[" + strings.Join(inner, ", ") + "]"
}

func renderKeyValues(pairs []KeyValue) string {
	inner := make([]string, len(pairs))
	for i, kv := range pairs {
		inner[i] = fmt.Sprintf("{key: %s, value: %s}", renderString(kv.Key), renderString(kv.Value))
	}
	return "[" + strings.Join(inner, ", ") + "]"
}

// decoding helpers; every mismatch reports the directive and argument name

func decodeString(d *ast.Directive, name string, dst *string) error {
	arg := d.Arguments.ForName(name)
	if arg == nil {
		return nil
	}
	if arg.Value.Kind != ast.StringValue && arg.Value.Kind != ast.BlockValue {
		return argTypeError(d, name, "a string")
	}
	*dst = arg.Value.Raw
	return nil
}

func decodeStringPtr(d *ast.Directive, name string, dst **string) error {
	var v string
	arg := d.Arguments.ForName(name)
	if arg == nil {
		return nil
	}
	if err := decodeString(d, name, &v); err != nil {
		return err
	}
	*dst = &v
	return nil
}

func decodeIntPtr(d *ast.Directive, name string, dst **int) error {
	arg := d.Arguments.ForName(name)
	if arg == nil {
		return nil
	}
	if arg.Value.Kind != ast.IntValue {
		return argTypeError(d, name, "an integer")
	}
	v, err := strconv.Atoi(arg.Value.Raw)
	if err != nil {
		return argTypeError(d, name, "an integer")
	}
	*dst = &v
	return nil
}

func decodeBool(d *ast.Directive, name string, dst *bool) error {
	arg := d.Arguments.ForName(name)
	if arg == nil {
		return nil
	}
	if arg.Value.Kind != ast.BooleanValue {
		return argTypeError(d, name, "a boolean")
	}
	*dst = arg.Value.Raw == "true"
	return nil
}

func decodeBoolPtr(d *ast.Directive, name string, dst **bool) error {
	arg := d.Arguments.ForName(name)
	if arg == nil {
		return nil
	}
	var v bool
	if err := decodeBool(d, name, &v); err != nil {
		return err
	}
	*dst = &v
	return nil
}

func decodeEnum(d *ast.Directive, name string, dst *string) error {
	arg := d.Arguments.ForName(name)
	if arg == nil {
		return nil
	}
	if arg.Value.Kind != ast.EnumValue {
		return argTypeError(d, name, "an enum value")
	}
	*dst = arg.Value.Raw
	return nil
}

func decodeStrings(d *ast.Directive, name string, dst *[]string) error {
	arg := d.Arguments.ForName(name)
	if arg == nil {
		return nil
	}
	if arg.Value.Kind != ast.ListValue {
		return argTypeError(d, name, "a list of strings")
	}
	var values []string
	for _, c := range arg.Value.Children {
		if c.Value.Kind != ast.StringValue {
			return argTypeError(d, name, "a list of strings")
		}
		values = append(values, c.Value.Raw)
	}
	*dst = values
	return nil
}

func decodeKeyValues(d *ast.Directive, name string, dst *[]KeyValue) error {
	arg := d.Arguments.ForName(name)
	if arg == nil {
		return nil
	}
	if arg.Value.Kind != ast.ListValue {
		return argTypeError(d, name, "a list of key/value objects")
	}
	var pairs []KeyValue
	for _, c := range arg.Value.Children {
		if c.Value.Kind != ast.ObjectValue {
			return argTypeError(d, name, "a list of key/value objects")
		}
		var kv KeyValue
		for _, f := range c.Value.Children {
			switch f.Name {
			case "key":
				kv.Key = f.Value.Raw
			case "value":
				kv.Value = f.Value.Raw
			default:
				return argTypeError(d, name, "a list of key/value objects")
			}
		}
		pairs = append(pairs, kv)
	}
	*dst = pairs
	return nil
}

func argTypeError(d *ast.Directive, name, expected string) error {
	return fmt.Errorf("@%s: argument %q must be %s", d.Name, name, expected)
}
