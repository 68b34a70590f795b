package config

import (
	"fmt"

	"github.com/buildbuildio/gqlconfig/cfgerrors"
	"github.com/buildbuildio/gqlconfig/common"
	"github.com/samber/lo"
)

// Validate checks the assembled config for dangling references. It is meant
// to run after link resolution and merging, not on partial documents.
func (c *Config) Validate() error {
	var errs cfgerrors.ErrorList

	if c.Schema.Query == "" {
		errs = append(errs, cfgerrors.NewError(
			cfgerrors.ValidationError,
			fmt.Errorf("schema has no query root type"),
		))
	} else if _, ok := c.Types[c.Schema.Query]; !ok {
		errs = append(errs, cfgerrors.NewError(
			cfgerrors.ValidationError,
			fmt.Errorf("query root type %s is not defined", c.Schema.Query),
		))
	}
	if c.Schema.Mutation != "" {
		if _, ok := c.Types[c.Schema.Mutation]; !ok {
			errs = append(errs, cfgerrors.NewError(
				cfgerrors.ValidationError,
				fmt.Errorf("mutation root type %s is not defined", c.Schema.Mutation),
			))
		}
	}
	if c.Schema.Subscription != "" {
		if _, ok := c.Types[c.Schema.Subscription]; !ok {
			errs = append(errs, cfgerrors.NewError(
				cfgerrors.ValidationError,
				fmt.Errorf("subscription root type %s is not defined", c.Schema.Subscription),
			))
		}
	}

	for _, name := range common.SortedKeys(c.Types) {
		errs = append(errs, c.validateType(name, c.Types[name])...)
	}

	for _, name := range common.SortedKeys(c.Enums) {
		variants := c.Enums[name].Variants
		if len(variants) == 0 {
			errs = append(errs, cfgerrors.NewError(
				cfgerrors.ValidationError,
				fmt.Errorf("enum %s has no variants", name),
			))
		}
		if len(lo.Uniq(variants)) != len(variants) {
			errs = append(errs, cfgerrors.NewError(
				cfgerrors.ValidationError,
				fmt.Errorf("enum %s has duplicate variants", name),
			))
		}
	}

	for _, name := range common.SortedKeys(c.Unions) {
		for _, member := range c.Unions[name].Types {
			if _, ok := c.Types[member]; !ok {
				errs = append(errs, cfgerrors.NewError(
					cfgerrors.ValidationError,
					fmt.Errorf("union %s references undefined type %s", name, member),
				))
			}
		}
	}

	seen := map[string]string{}
	for _, l := range c.Links {
		if l.ID == nil {
			continue
		}
		if src, ok := seen[*l.ID]; ok {
			errs = append(errs, cfgerrors.NewError(
				cfgerrors.ValidationError,
				fmt.Errorf("link id %q used by both %s and %s", *l.ID, src, l.Src),
			))
			continue
		}
		seen[*l.ID] = l.Src
	}

	return errs.AsError()
}

func (c *Config) validateType(name string, t *Type) cfgerrors.ErrorList {
	var errs cfgerrors.ErrorList
	for _, f := range t.Fields {
		if !c.IsDefined(f.Type.Name) && !common.IsScalarName(f.Type.Name) {
			errs = append(errs, fieldError(f, "%s.%s references undefined type %s", name, f.Name, f.Type.Name))
		}
		for _, a := range f.Args {
			if !c.IsDefined(a.Type.Name) && !common.IsScalarName(a.Type.Name) {
				errs = append(errs, fieldError(f, "%s.%s(%s:) references undefined type %s", name, f.Name, a.Name, a.Type.Name))
			}
		}
	}
	return errs
}

func fieldError(f *Field, msg string, args ...any) *cfgerrors.Error {
	err := cfgerrors.NewError(cfgerrors.ValidationError, fmt.Errorf(msg, args...))
	if f.Position != nil {
		err.Locations = []cfgerrors.Location{{Line: f.Position.Line, Column: f.Position.Column}}
		if f.Position.Src != nil {
			err.Source = f.Position.Src.Name
		}
	}
	return err
}
