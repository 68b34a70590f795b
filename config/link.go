package config

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// LinkType tells the linker how to treat a linked document.
type LinkType string

const (
	LinkConfig   LinkType = "Config"
	LinkProtobuf LinkType = "Protobuf"
	LinkScript   LinkType = "Script"
	LinkCert     LinkType = "Cert"
	LinkKey      LinkType = "Key"
)

var linkTypes = []LinkType{LinkConfig, LinkProtobuf, LinkScript, LinkCert, LinkKey}

// Link is one @link directive: an external document to pull into the schema.
type Link struct {
	Src  string   `json:"src" yaml:"src"`
	Type LinkType `json:"type,omitempty" yaml:"type,omitempty"`
	ID   *string  `json:"id,omitempty" yaml:"id,omitempty"`

	Position *ast.Position `json:"-" yaml:"-"`
}

func (l *Link) DirectiveName() string { return "link" }

func (l *Link) DirectiveArgs() []DirectiveArg {
	var args []DirectiveArg
	if l.ID != nil {
		args = append(args, DirectiveArg{"id", renderString(*l.ID)})
	}
	args = append(args, DirectiveArg{"src", renderString(l.Src)})
	if l.Type != "" {
		args = append(args, DirectiveArg{"type", string(l.Type)})
	}
	return args
}

func linkFromDirective(d *ast.Directive) (*Link, error) {
	l := &Link{Position: d.Position}
	if err := decodeStringPtr(d, "id", &l.ID); err != nil {
		return nil, err
	}
	if err := decodeString(d, "src", &l.Src); err != nil {
		return nil, err
	}
	var linkType string
	if err := decodeEnum(d, "type", &linkType); err != nil {
		return nil, err
	}
	if linkType != "" {
		l.Type = LinkType(linkType)
		if !lo.Contains(linkTypes, l.Type) {
			return nil, fmt.Errorf("@link: unknown type %s", linkType)
		}
	}
	if l.Src == "" {
		return nil, fmt.Errorf("@link: src is required")
	}
	return l, nil
}

// IsConfig reports whether the linked document is itself a config to merge.
// An absent type defaults to Config, matching the directive definition.
func (l *Link) IsConfig() bool {
	return l.Type == "" || l.Type == LinkConfig
}
