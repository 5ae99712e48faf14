package murmur

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArchive_BucketOffset(t *testing.T) {
	a := Archive{Offset: 17, SecondsPerPoint: 10, Points: 6, coarser: -1}

	// t=1000 -> bucket_start=1000, index=(1000%60)/10=4.
	require.EqualValues(t, 1000, a.bucketStart(1000))
	require.EqualValues(t, 17+4*pointSize, a.bucketOffset(1000))
}

func TestArchive_RetentionAndSize(t *testing.T) {
	a := Archive{Offset: 0, SecondsPerPoint: 60, Points: 5}
	require.EqualValues(t, 300, a.Retention())
	require.EqualValues(t, 80, a.Size())
	require.EqualValues(t, 80, a.End())
}

func TestArchive_BucketOffset_WrapsWithinRing(t *testing.T) {
	a := Archive{Offset: 100, SecondsPerPoint: 10, Points: 6}
	// t and t+retention map to the same bucket (the ring wraps).
	require.Equal(t, a.bucketOffset(1000), a.bucketOffset(1000+a.Retention()))
}
