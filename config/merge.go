package config

import (
	"sort"

	"github.com/samber/lo"
)

// Merge folds other into c with right bias: every option other sets wins,
// definitions are unioned, and same-named definitions merge member-wise.
// The receiver is modified and returned.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	if other.Schema.Query != "" {
		c.Schema.Query = other.Schema.Query
	}
	if other.Schema.Mutation != "" {
		c.Schema.Mutation = other.Schema.Mutation
	}
	if other.Schema.Subscription != "" {
		c.Schema.Subscription = other.Schema.Subscription
	}

	c.Server = c.Server.merge(other.Server)
	c.Upstream = c.Upstream.merge(other.Upstream)
	c.Links = append(c.Links, other.Links...)

	for name, t := range other.Types {
		if existing, ok := c.Types[name]; ok {
			c.Types[name] = existing.merge(t)
		} else {
			c.Types[name] = t
		}
	}
	for name, e := range other.Enums {
		if existing, ok := c.Enums[name]; ok {
			c.Enums[name] = existing.merge(e)
		} else {
			c.Enums[name] = e
		}
	}
	for name, u := range other.Unions {
		if existing, ok := c.Unions[name]; ok {
			c.Unions[name] = existing.merge(u)
		} else {
			c.Unions[name] = u
		}
	}

	return c
}

// merge keeps the left declaration order: existing fields are replaced in
// place by same-named right fields, new right fields are appended.
func (t *Type) merge(other *Type) *Type {
	for _, f := range other.Fields {
		if _, i, ok := lo.FindIndexOf(t.Fields, func(existing *Field) bool {
			return existing.Name == f.Name
		}); ok {
			t.Fields[i] = f
			continue
		}
		t.Fields = append(t.Fields, f)
	}
	t.Implements = mergeStrings(t.Implements, other.Implements)
	if other.Doc != "" {
		t.Doc = other.Doc
	}
	return t
}

// merge unions variants; the result is sorted and de-duplicated.
func (e *Enum) merge(other *Enum) *Enum {
	e.Variants = lo.Uniq(append(e.Variants, other.Variants...))
	sort.Strings(e.Variants)
	if other.Doc != "" {
		e.Doc = other.Doc
	}
	return e
}

// merge unions member types; the result is sorted and de-duplicated.
func (u *Union) merge(other *Union) *Union {
	u.Types = lo.Uniq(append(u.Types, other.Types...))
	sort.Strings(u.Types)
	if other.Doc != "" {
		u.Doc = other.Doc
	}
	return u
}

func mergeStrings(left, right []string) []string {
	return lo.Uniq(append(left, right...))
}

func mergeKeyValues(left, right []KeyValue) []KeyValue {
	out := make([]KeyValue, len(left))
	copy(out, left)
	for _, kv := range right {
		if _, i, ok := lo.FindIndexOf(out, func(existing KeyValue) bool {
			return existing.Key == kv.Key
		}); ok {
			out[i] = kv
			continue
		}
		out = append(out, kv)
	}
	return out
}
