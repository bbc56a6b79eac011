package base69_test

import (
	"testing"

	"github.com/mewkiz/popvcf/internal/base69"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendParseRoundTrip(t *testing.T) {
	tests := []struct {
		n    uint32
		want string
	}{
		{n: 0, want: ":"},
		{n: 1, want: ";"},
		{n: 68, want: string(rune(base69.Min + 68))},
		{n: 69, want: ":;"}, // 69 = 1*69 + 0, little-endian digits ':', ';'
		{n: 70, want: ";;"}, // 70 = 1*69 + 1
	}

	for _, tt := range tests {
		got, err := base69.Append(nil, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(got), "n=%d", tt.n)

		n, consumed, err := base69.Parse(append(got, '\t'))
		require.NoError(t, err)
		assert.Equal(t, tt.n, n)
		assert.Equal(t, len(got), consumed)
	}
}

func TestParseStopsAtTerminator(t *testing.T) {
	n, consumed, err := base69.Parse([]byte(";;\tABC"))
	require.NoError(t, err)
	assert.Equal(t, uint32(70), n)
	assert.Equal(t, 2, consumed)
}

func TestParseEmpty(t *testing.T) {
	_, _, err := base69.Parse([]byte("\t"))
	assert.ErrorIs(t, err, base69.ErrEmptyToken)
}

func TestAppendOutOfRange(t *testing.T) {
	_, err := base69.Append(nil, base69.MaxValue+1)
	assert.ErrorIs(t, err, base69.ErrOutOfRange)
}
