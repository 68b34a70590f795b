package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildbuildio/gqlconfig/config"
	"github.com/buildbuildio/gqlconfig/format"
)

func isEqualConfigs(t *testing.T, expected string, actual *config.Config) {
	t.Helper()

	assert.Equal(
		t,
		loadAndFormatConfig(t, expected),
		format.FormatConfig(actual),
	)
}

func mustRunMerger(t *testing.T, m Merger, inputs []string) *MergeResult {
	t.Helper()

	var inps []*MergeInput
	for i, input := range inputs {
		if input == "" {
			continue
		}
		c, err := config.Parse([]byte(input), "schema")
		require.NoError(t, err)
		inps = append(inps, &MergeInput{
			Config: c,
			Source: string(rune('a' + i)),
		})
	}

	res, err := m.Merge(inps)
	require.NoError(t, err)

	return res
}

func loadAndFormatConfig(t *testing.T, input string) string {
	t.Helper()

	c, err := config.Parse([]byte(input), "schema")
	require.NoError(t, err)
	return format.FormatConfig(c)
}
