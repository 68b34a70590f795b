package config

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Config {
	t.Helper()

	c, err := Parse([]byte(src), "test.graphql")
	require.NoError(t, err)
	return c
}

func TestMergeRightBiasOptions(t *testing.T) {
	left := mustParse(t, `
schema @server(port: 8000, hostname: "0.0.0.0") @upstream(baseURL: "http://left.example.com") {
  query: Query
}

type Query {
  version: String
}
`)
	right := mustParse(t, `
schema @server(port: 9000) @upstream(httpCache: 42) {
  query: Query
}

type Query {
  health: String
}
`)

	merged := left.Merge(right)

	assert.Equal(t, 9000, *merged.Server.Port)
	// untouched left options survive
	assert.Equal(t, "0.0.0.0", *merged.Server.Hostname)
	assert.Equal(t, "http://left.example.com", *merged.Upstream.BaseURL)
	assert.Equal(t, 42, *merged.Upstream.HTTPCache)
}

func TestMergeTypes(t *testing.T) {
	left := mustParse(t, `
schema {
  query: Query
}

type Query {
  posts: [Post]
}

type Post {
  id: Int!
  title: String
}
`)
	right := mustParse(t, `
schema {
  query: Query
}

type Post {
  title: String @http(path: "/titles/{{.value.id}}")
  body: String
}

type User {
  id: Int!
}
`)

	merged := left.Merge(right)

	post := merged.Types["Post"]
	require.NotNil(t, post)
	// left declaration order, right fields appended
	assert.Equal(t, []string{"id", "title", "body"}, lo.Map(post.Fields, func(f *Field, _ int) string {
		return f.Name
	}))

	// the right field definition replaces the left one entirely
	title, ok := post.FindField("title")
	require.True(t, ok)
	require.NotNil(t, title.Http)
	assert.Equal(t, "/titles/{{.value.id}}", title.Http.Path)

	assert.NotNil(t, merged.Types["User"])
	assert.NotNil(t, merged.Types["Query"])
}

func TestMergeEnums(t *testing.T) {
	left := mustParse(t, `
schema {
  query: Query
}

type Query {
  role: Role
}

enum Role {
  USER
  ADMIN
}
`)
	right := mustParse(t, `
schema {
  query: Query
}

enum Role {
  ADMIN
  GUEST
}
`)

	merged := left.Merge(right)

	require.NotNil(t, merged.Enums["Role"])
	assert.Equal(t, []string{"ADMIN", "GUEST", "USER"}, merged.Enums["Role"].Variants)
}

func TestMergeLinksConcatenate(t *testing.T) {
	left := mustParse(t, `
schema @link(src: "./a.graphql", type: Config) {
  query: Query
}

type Query {
  version: String
}
`)
	right := mustParse(t, `
schema @link(src: "./b.graphql", type: Config) {
  query: Query
}
`)

	merged := left.Merge(right)

	assert.Equal(t, []string{"./a.graphql", "./b.graphql"}, lo.Map(merged.Links, func(l *Link, _ int) string {
		return l.Src
	}))
}

func TestMergeNil(t *testing.T) {
	c := mustParse(t, `
schema {
  query: Query
}

type Query {
  version: String
}
`)

	assert.Equal(t, c, c.Merge(nil))
}

func TestMergeKeyValues(t *testing.T) {
	left := []KeyValue{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}
	right := []KeyValue{{Key: "b", Value: "20"}, {Key: "c", Value: "3"}}

	assert.Equal(t, []KeyValue{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "20"},
		{Key: "c", Value: "3"},
	}, mergeKeyValues(left, right))
}
