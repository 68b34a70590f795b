package format

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/buildbuildio/gqlconfig/config"
)

type Formatter interface {
	FormatConfig(c *config.Config)
}

func NewFormatter(w io.Writer) Formatter {
	return &formatter{
		indent: "  ",
		writer: w,
	}
}

// FormatConfig renders the config as canonical SDL: the schema block with
// its directives first, then every definition sorted by name. The output is
// stable and reformatting it yields the same bytes.
func FormatConfig(c *config.Config) string {
	buf := bytes.NewBufferString("")
	f := NewFormatter(buf)
	f.FormatConfig(c)
	return buf.String()
}

type formatter struct {
	writer io.Writer

	indent     string
	indentSize int

	padNext  bool
	lineHead bool
}

func (f *formatter) writeString(s string) {
	_, _ = f.writer.Write([]byte(s))
}

func (f *formatter) writeIndent() *formatter {
	if f.lineHead {
		f.writeString(strings.Repeat(f.indent, f.indentSize))
	}
	f.lineHead = false
	f.padNext = false

	return f
}

func (f *formatter) WriteNewline() *formatter {
	f.writeString("\n")
	f.lineHead = true
	f.padNext = false

	return f
}

func (f *formatter) WriteWord(word string) *formatter {
	if f.lineHead {
		f.writeIndent()
	}
	if f.padNext {
		f.writeString(" ")
	}
	f.writeString(strings.TrimSpace(word))
	f.padNext = true

	return f
}

func (f *formatter) WriteString(s string) *formatter {
	if f.lineHead {
		f.writeIndent()
	}
	if f.padNext {
		f.writeString(" ")
	}
	f.writeString(s)
	f.padNext = false

	return f
}

func (f *formatter) IncrementIndent() {
	f.indentSize++
}

func (f *formatter) DecrementIndent() {
	f.indentSize--
}

func (f *formatter) NoPadding() *formatter {
	f.padNext = false

	return f
}

func (f *formatter) NeedPadding() *formatter {
	f.padNext = true

	return f
}

func (f *formatter) FormatConfig(c *config.Config) {
	f.FormatSchemaDefinition(c)

	for _, def := range sortedDefinitions(c) {
		f.WriteNewline()
		switch {
		case def.typ != nil:
			f.FormatType(def.name, def.typ)
		case def.enum != nil:
			f.FormatEnum(def.name, def.enum)
		case def.union != nil:
			f.FormatUnion(def.name, def.union)
		}
	}
}

func (f *formatter) FormatSchemaDefinition(c *config.Config) {
	f.WriteWord("schema")
	if c.Server != nil {
		f.FormatDirective(c.Server)
	}
	if c.Upstream != nil {
		f.FormatDirective(c.Upstream)
	}
	for _, l := range c.Links {
		f.FormatDirective(l)
	}

	f.WriteString("{").WriteNewline()
	f.IncrementIndent()
	if c.Schema.Query != "" {
		f.WriteWord("query:").WriteWord(c.Schema.Query).WriteNewline()
	}
	if c.Schema.Mutation != "" {
		f.WriteWord("mutation:").WriteWord(c.Schema.Mutation).WriteNewline()
	}
	if c.Schema.Subscription != "" {
		f.WriteWord("subscription:").WriteWord(c.Schema.Subscription).WriteNewline()
	}
	f.DecrementIndent()
	f.WriteString("}").WriteNewline()
}

func (f *formatter) FormatType(name string, t *config.Type) {
	f.FormatDoc(t.Doc)
	f.WriteWord("type").WriteWord(name)
	if len(t.Implements) > 0 {
		f.WriteWord("implements").WriteWord(strings.Join(t.Implements, " & "))
	}
	f.WriteString("{").WriteNewline()
	f.IncrementIndent()
	for _, field := range t.Fields {
		f.FormatField(field)
	}
	f.DecrementIndent()
	f.WriteString("}").WriteNewline()
}

func (f *formatter) FormatField(field *config.Field) {
	f.WriteWord(field.Name)
	f.FormatArgumentDefinitionList(field.Args)
	f.NoPadding().WriteString(":").NeedPadding()
	f.WriteWord(field.Type.String())
	if resolver, ok := field.Resolver(); ok {
		f.FormatDirective(resolver)
	}
	if field.Modify != nil {
		f.FormatDirective(field.Modify)
	}
	if field.Omit {
		f.WriteWord("@omit")
	}
	f.WriteNewline()
}

func (f *formatter) FormatArgumentDefinitionList(args []*config.Arg) {
	if len(args) == 0 {
		return
	}
	f.NoPadding().WriteString("(")
	for idx, arg := range args {
		f.WriteWord(arg.Name).NoPadding().WriteString(":").NeedPadding()
		f.WriteWord(arg.Type.String())
		if arg.Default != "" {
			f.WriteWord("=").WriteWord(arg.Default)
		}
		if idx != len(args)-1 {
			f.NoPadding().WriteString(",").NeedPadding()
		}
	}
	f.NoPadding().WriteString(")")
}

func (f *formatter) FormatEnum(name string, e *config.Enum) {
	f.FormatDoc(e.Doc)
	f.WriteWord("enum").WriteWord(name)
	f.WriteString("{").WriteNewline()
	f.IncrementIndent()
	for _, variant := range e.Variants {
		f.WriteWord(variant).WriteNewline()
	}
	f.DecrementIndent()
	f.WriteString("}").WriteNewline()
}

func (f *formatter) FormatUnion(name string, u *config.Union) {
	f.FormatDoc(u.Doc)
	f.WriteWord("union").WriteWord(name).WriteWord("=")
	f.WriteWord(strings.Join(u.Types, " | "))
	f.WriteNewline()
}

func (f *formatter) FormatDirective(d config.Directive) {
	f.WriteString("@").NoPadding().WriteWord(d.DirectiveName())
	args := d.DirectiveArgs()
	if len(args) == 0 {
		f.NeedPadding()
		return
	}
	f.NoPadding().WriteString("(")
	for idx, arg := range args {
		f.WriteWord(arg.Name).NoPadding().WriteString(":").NeedPadding()
		f.WriteWord(arg.Value)
		if idx != len(args)-1 {
			f.NoPadding().WriteString(",").NeedPadding()
		}
	}
	f.NoPadding().WriteString(")").NeedPadding()
}

func (f *formatter) FormatDoc(doc string) {
	if doc == "" {
		return
	}
	f.WriteString(`"""`).WriteNewline()
	for _, line := range strings.Split(doc, "\n") {
		f.WriteString(line).WriteNewline()
	}
	f.WriteString(`"""`).WriteNewline()
}

type definition struct {
	name  string
	typ   *config.Type
	enum  *config.Enum
	union *config.Union
}

// sortedDefinitions flattens every definition into one list ordered by name
// so the output does not depend on map iteration.
func sortedDefinitions(c *config.Config) []definition {
	defs := make([]definition, 0, len(c.Types)+len(c.Enums)+len(c.Unions))
	for name, t := range c.Types {
		defs = append(defs, definition{name: name, typ: t})
	}
	for name, e := range c.Enums {
		defs = append(defs, definition{name: name, enum: e})
	}
	for name, u := range c.Unions {
		defs = append(defs, definition{name: name, union: u})
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].name < defs[j].name })
	return defs
}
