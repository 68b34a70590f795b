package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	for path, expected := range map[string]Format{
		"schema.graphql":     FormatSDL,
		"schema.gql":         FormatSDL,
		"config.json":        FormatJSON,
		"config.yml":         FormatYAML,
		"config.yaml":        FormatYAML,
		"dir/nested.GraphQL": FormatSDL,
	} {
		actual, err := DetectFormat(path)
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	}

	_, err := DetectFormat("schema.proto")
	assert.Error(t, err)
}

func TestDecodeJSON(t *testing.T) {
	src := []byte(`{
  "schema": {"query": "Query"},
  "server": {"port": 8000},
  "upstream": {"baseURL": "http://api.example.com"},
  "types": {
    "Query": {
      "fields": [
        {"name": "posts", "type": {"name": "Post", "list": true}, "http": {"path": "/posts"}}
      ]
    },
    "Post": {
      "fields": [
        {"name": "id", "type": {"name": "Int", "required": true}}
      ]
    }
  }
}`)

	c, err := DecodeJSON(src)
	require.NoError(t, err)

	assert.Equal(t, "Query", c.Schema.Query)
	assert.Equal(t, 8000, *c.Server.Port)

	posts, ok := c.FindField("Query", "posts")
	require.True(t, ok)
	assert.Equal(t, "[Post]", posts.Type.String())
	require.NotNil(t, posts.Http)
	assert.Equal(t, "/posts", posts.Http.Path)

	assert.NoError(t, c.Validate())
}

func TestDecodeYAML(t *testing.T) {
	src := []byte(`
schema:
  query: Query
server:
  port: 8000
types:
  Query:
    fields:
      - name: version
        type: {name: String}
`)

	c, err := DecodeYAML(src)
	require.NoError(t, err)

	assert.Equal(t, "Query", c.Schema.Query)
	assert.Equal(t, 8000, *c.Server.Port)

	version, ok := c.FindField("Query", "version")
	require.True(t, ok)
	assert.Equal(t, "String", version.Type.String())
}

func TestJSONRoundTrip(t *testing.T) {
	c := mustParse(t, `
schema @server(port: 8000) {
  query: Query
}

type Query {
  posts: [Post] @http(path: "/posts")
}

type Post {
  id: Int!
}
`)

	encoded, err := c.EncodeJSON()
	require.NoError(t, err)

	decoded, err := DecodeJSON(encoded)
	require.NoError(t, err)

	assert.Equal(t, c.Schema, decoded.Schema)
	assert.Equal(t, c.Server, decoded.Server)

	posts, ok := decoded.FindField("Query", "posts")
	require.True(t, ok)
	assert.Equal(t, "[Post]", posts.Type.String())
}
