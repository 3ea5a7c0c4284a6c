package legend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReliabilityWeights(t *testing.T) {
	t.Parallel()

	cases := []struct {
		level ReliabilityLevel
		want  float64
	}{
		{Experimental, 0.3},
		{Variable, 0.5},
		{Medium, 0.7},
		{High, 1.0},
		{ReliabilityLevel(42), 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.level.Weight(), "level %v", tc.level)
	}
}

func TestReliabilityOrdering(t *testing.T) {
	t.Parallel()

	// Filtering by a floor relies on the ordinal ordering of the levels.
	require.Less(t, Experimental, Variable)
	require.Less(t, Variable, Medium)
	require.Less(t, Medium, High)
}

func TestParseReliability(t *testing.T) {
	t.Parallel()

	for _, level := range []ReliabilityLevel{Experimental, Variable, Medium, High} {
		parsed, err := ParseReliability(level.String())
		require.NoError(t, err)
		require.Equal(t, level, parsed)
	}

	_, err := ParseReliability("legendary")
	require.ErrorContains(t, err, `unknown reliability level "legendary"`)

	// Parsing is strict; display casing is not accepted.
	_, err = ParseReliability("High")
	require.Error(t, err)
}

func TestReliabilityString_Unknown(t *testing.T) {
	t.Parallel()
	require.Equal(t, "ReliabilityLevel(9)", ReliabilityLevel(9).String())
}
