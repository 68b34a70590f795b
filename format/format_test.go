package format

import (
	"os"
	"testing"

	"github.com/samber/lo"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildbuildio/gqlconfig/config"
)

func TestFormatConfig(t *testing.T) {
	c := config.NewConfig()
	c.Schema.Query = "Query"
	c.Server = &config.Server{Port: lo.ToPtr(8000)}
	c.Upstream = &config.Upstream{
		BaseURL:   lo.ToPtr("http://jsonplaceholder.typicode.com"),
		HTTPCache: lo.ToPtr(42),
	}
	c.Types["Query"] = &config.Type{Fields: []*config.Field{{
		Name: "posts",
		Type: config.TypeRef{Name: "Post", List: true},
		Http: &config.Http{Path: "/posts"},
	}}}
	c.Types["Post"] = &config.Type{Fields: []*config.Field{
		{Name: "id", Type: config.TypeRef{Name: "Int", NonNull: true}},
		{Name: "title", Type: config.TypeRef{Name: "String"}},
	}}

	expected := `schema @server(port: 8000) @upstream(baseURL: "http://jsonplaceholder.typicode.com", httpCache: 42) {
  query: Query
}

type Post {
  id: Int!
  title: String
}

type Query {
  posts: [Post] @http(path: "/posts")
}
`

	assert.Equal(t, expected, FormatConfig(c))
}

func TestFormatConfigSortsDefinitions(t *testing.T) {
	c := config.NewConfig()
	c.Schema.Query = "Query"
	c.Types["Query"] = &config.Type{Fields: []*config.Field{
		{Name: "media", Type: config.TypeRef{Name: "Media"}},
	}}
	c.Types["Video"] = &config.Type{Fields: []*config.Field{
		{Name: "url", Type: config.TypeRef{Name: "String"}},
	}}
	c.Types["Photo"] = &config.Type{Fields: []*config.Field{
		{Name: "url", Type: config.TypeRef{Name: "String"}},
	}}
	c.Enums["Role"] = &config.Enum{Variants: []string{"ADMIN", "USER"}}
	c.Unions["Media"] = &config.Union{Types: []string{"Photo", "Video"}}

	expected := `schema {
  query: Query
}

union Media = Photo | Video

type Photo {
  url: String
}

type Query {
  media: Media
}

enum Role {
  ADMIN
  USER
}

type Video {
  url: String
}
`

	assert.Equal(t, expected, FormatConfig(c))
}

func TestFormatSchemaDirectiveArgumentOrder(t *testing.T) {
	c := config.NewConfig()
	c.Schema.Query = "Query"
	c.Server = &config.Server{
		Port:          lo.ToPtr(8000),
		Hostname:      lo.ToPtr("0.0.0.0"),
		Introspection: lo.ToPtr(false),
		Vars:          []config.KeyValue{{Key: "apiKey", Value: "{{.env.API_KEY}}"}},
	}
	c.Links = []*config.Link{
		{Src: "./users.graphql", Type: config.LinkConfig},
		{Src: "./news.proto", Type: config.LinkProtobuf, ID: lo.ToPtr("news")},
	}
	c.Types["Query"] = &config.Type{Fields: []*config.Field{
		{Name: "version", Type: config.TypeRef{Name: "String"}, Expr: &config.Expr{Body: `{value: "v1"}`}},
	}}

	expected := `schema @server(hostname: "0.0.0.0", introspection: false, port: 8000, vars: [{key: "apiKey", value: "{{.env.API_KEY}}"}]) @link(src: "./users.graphql", type: Config) @link(id: "news", src: "./news.proto", type: Protobuf) {
  query: Query
}

type Query {
  version: String @expr(body: {value: "v1"})
}
`

	assert.Equal(t, expected, FormatConfig(c))
}

func TestFormatFieldArguments(t *testing.T) {
	c := config.NewConfig()
	c.Schema.Query = "Query"
	c.Types["Query"] = &config.Type{Fields: []*config.Field{{
		Name: "user",
		Type: config.TypeRef{Name: "User", NonNull: true},
		Args: []*config.Arg{
			{Name: "id", Type: config.TypeRef{Name: "Int", NonNull: true}},
			{Name: "verbose", Type: config.TypeRef{Name: "Boolean"}, Default: "false"},
		},
		GraphQL: &config.GraphQL{
			Name: "user",
			Args: []config.KeyValue{{Key: "id", Value: "{{.args.id}}"}},
		},
	}}}
	c.Types["User"] = &config.Type{Fields: []*config.Field{
		{Name: "id", Type: config.TypeRef{Name: "Int", NonNull: true}},
	}}

	expected := `schema {
  query: Query
}

type Query {
  user(id: Int!, verbose: Boolean = false): User! @graphQL(args: [{key: "id", value: "{{.args.id}}"}], name: "user")
}

type User {
  id: Int!
}
`

	assert.Equal(t, expected, FormatConfig(c))
}

func TestFormatFieldModifiers(t *testing.T) {
	c := config.NewConfig()
	c.Schema.Query = "Query"
	c.Types["Query"] = &config.Type{Fields: []*config.Field{
		{Name: "internal", Type: config.TypeRef{Name: "String"}, Omit: true},
		{Name: "name", Type: config.TypeRef{Name: "String"}, Modify: &config.Modify{Name: "fullName"}},
	}}

	expected := `schema {
  query: Query
}

type Query {
  internal: String @omit
  name: String @modify(name: "fullName")
}
`

	assert.Equal(t, expected, FormatConfig(c))
}

func TestFormatIdempotent(t *testing.T) {
	src, err := os.ReadFile("testdata/merged_input.graphql")
	require.NoError(t, err)

	c, err := config.Parse(src, "merged_input.graphql")
	require.NoError(t, err)

	first := FormatConfig(c)

	reparsed, err := config.Parse([]byte(first), "canonical.graphql")
	require.NoError(t, err)

	assert.Equal(t, first, FormatConfig(reparsed))
}

func TestFormatConfigGolden(t *testing.T) {
	src, err := os.ReadFile("testdata/merged_input.graphql")
	require.NoError(t, err)

	c, err := config.Parse(src, "merged_input.graphql")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "merged", []byte(FormatConfig(c)))
}
