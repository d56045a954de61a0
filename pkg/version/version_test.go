package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	old := version
	version = v
	t.Cleanup(func() { version = old })
}

func TestGetVersion(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"v1.2.3", "1.2.3"},
		{"0.0.0-dev", "0.0.0-dev"},
		{"not-a-version", "not-a-version"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			withVersion(t, tt.raw)
			assert.Equal(t, tt.want, GetVersion())
		})
	}
}

func TestSemver(t *testing.T) {
	withVersion(t, "v2.4.0")
	v, err := Semver()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v.Major())
	assert.False(t, IsDevelopment())

	withVersion(t, "garbage")
	_, err = Semver()
	require.Error(t, err)
	assert.True(t, IsDevelopment())
}

func TestIsDevelopmentDefault(t *testing.T) {
	assert.True(t, IsDevelopment())
}

func TestInfo(t *testing.T) {
	withVersion(t, "1.0.0")
	assert.Contains(t, Info(), "impactcalc 1.0.0")
	assert.Contains(t, Info(), "commit "+GetGitCommit())
	assert.Contains(t, Info(), "built "+GetBuildDate())
}
