package murmur

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestParseSpec_UnitPrefixes(t *testing.T) {
	// P7: these two specs both mean 10 seconds per point with a 60 second
	// (6 point) retention, since their retention halves both carry an
	// explicit unit suffix that triggers duration-division.
	cases := []string{"10s:1m", "10sec:60s"}
	for _, spec := range cases {
		a, err := ParseSpec(spec)
		require.NoError(t, err, spec)
		require.Equal(t, RawArchive{SecondsPerPoint: 10, Points: 6}, a, spec)
	}

	a, err := ParseSpec("1h:1d")
	require.NoError(t, err)
	require.Equal(t, RawArchive{SecondsPerPoint: 3600, Points: 24}, a)
}

// TestParseSpec_BareRetentionIsAPointCount checks that a unitless retention
// is a literal point count, not a duration that gets divided by precision:
// "10:60" means 10 seconds per point for 60 points, not 60 seconds' worth.
func TestParseSpec_BareRetentionIsAPointCount(t *testing.T) {
	a, err := ParseSpec("10:60")
	require.NoError(t, err)
	require.Equal(t, RawArchive{SecondsPerPoint: 10, Points: 60}, a)
}

func TestParseSpec_Errors(t *testing.T) {
	_, err := ParseSpecs(nil)
	require.ErrorIs(t, err, ErrEmptySpec)

	_, err = ParseSpecs([]string{"10s"})
	require.ErrorIs(t, err, ErrInvalidSpec)

	_, err = ParseSpecs([]string{"10x:1m"})
	require.ErrorIs(t, err, ErrInvalidSpec)

	_, err = ParseSpecs([]string{"abc:1m"})
	require.ErrorIs(t, err, ErrInvalidSpec)
}

func TestParseSpecs_Order(t *testing.T) {
	got, err := ParseSpecs([]string{"10s:1m", "1m:5m"})
	require.NoError(t, err)

	want := []RawArchive{
		{SecondsPerPoint: 10, Points: 6},
		{SecondsPerPoint: 60, Points: 5},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ParseSpecs mismatch (-want +got):\n%s", diff)
	}
}
