package murmur

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_S1(t *testing.T) {
	archives, err := ParseSpecs([]string{"10s:1m", "1m:5m"})
	require.NoError(t, err)

	sorted, err := Validate(archives)
	require.NoError(t, err)
	require.Equal(t, []RawArchive{
		{SecondsPerPoint: 10, Points: 6},
		{SecondsPerPoint: 60, Points: 5},
	}, sorted)
}

func TestValidate_S3_DuplicatePrecision(t *testing.T) {
	archives, err := ParseSpecs([]string{"10s:1m", "10s:5m"})
	require.NoError(t, err)

	_, err = Validate(archives)
	require.ErrorIs(t, err, ErrStructuralViolation)
}

func TestValidate_S4_DoesNotEvenlyDivide(t *testing.T) {
	archives, err := ParseSpecs([]string{"7s:1m", "10s:5m"})
	require.NoError(t, err)

	_, err = Validate(archives)
	require.ErrorIs(t, err, ErrStructuralViolation)
}

func TestValidate_S5_RetentionNotIncreasing(t *testing.T) {
	archives, err := ParseSpecs([]string{"10s:1m", "60s:30s"})
	require.NoError(t, err)

	_, err = Validate(archives)
	require.ErrorIs(t, err, ErrStructuralViolation)
}

func TestValidate_EqualRetentionRejected(t *testing.T) {
	// I3 is strict: equal retentions are rejected even without a duplicate
	// precision.
	archives := []RawArchive{
		{SecondsPerPoint: 10, Points: 6},  // retention 60
		{SecondsPerPoint: 20, Points: 3},  // retention 60
	}
	_, err := Validate(archives)
	require.ErrorIs(t, err, ErrStructuralViolation)
}

func TestValidate_NotEnoughPointsToConsolidate(t *testing.T) {
	archives := []RawArchive{
		{SecondsPerPoint: 10, Points: 2}, // only 2 points, needs 6 to feed 60s archive
		{SecondsPerPoint: 60, Points: 10},
	}
	_, err := Validate(archives)
	require.ErrorIs(t, err, ErrStructuralViolation)
}

func TestValidate_EmptyRejected(t *testing.T) {
	_, err := Validate(nil)
	require.ErrorIs(t, err, ErrEmptySpec)
}

func TestValidate_UnsortedInputIsSorted(t *testing.T) {
	archives := []RawArchive{
		{SecondsPerPoint: 60, Points: 5},
		{SecondsPerPoint: 10, Points: 6},
	}
	sorted, err := Validate(archives)
	require.NoError(t, err)
	require.Equal(t, uint32(10), sorted[0].SecondsPerPoint)
	require.Equal(t, uint32(60), sorted[1].SecondsPerPoint)
}
