package groebner

import (
	"testing"

	"github.com/blang/semver/v4"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert := require.New(t)

	assert.NoError(Version.Validate(), "version must be a valid semver")

	parsed, err := semver.Parse(Version.String())
	assert.NoError(err)
	assert.True(parsed.EQ(Version), "version must round trip through its string form")
}

func TestFields(t *testing.T) {
	assert := require.New(t)

	fields := Fields()
	assert.NotEmpty(fields)
	assert.Contains(fields, "q", "the rationals are the default field")

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		_, dup := seen[f]
		assert.False(dup, "duplicate field identifier %q", f)
		seen[f] = struct{}{}
	}
}
