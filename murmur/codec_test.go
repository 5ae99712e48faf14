package murmur

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointCodecRoundTrip(t *testing.T) {
	cases := []Point{
		{Interval: 1000, Value: 3.14159},
		{Interval: 1, Value: -42.5},
		{Interval: 0, Value: 0},
		{Interval: 999999999, Value: 1e300},
	}
	for _, p := range cases {
		buf := p.encode()
		require.Len(t, buf, pointSize)
		got := decodePoint(buf)
		require.Equal(t, p, got)
	}
}

func TestFileHeaderCodecRoundTrip(t *testing.T) {
	h := fileHeader{
		Aggregation:  Sum,
		MaxRetention: 123456789,
		XFilesFactor: 50,
		ArchiveCount: 3,
	}
	buf := h.encode()
	require.Len(t, buf, fileHeaderSize)

	got, err := decodeFileHeader(bytes.NewReader(buf))
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestFileHeaderCodec_UnknownAggregationIsCorrupt(t *testing.T) {
	h := fileHeader{Aggregation: 99, MaxRetention: 1, XFilesFactor: 1, ArchiveCount: 1}
	_, err := decodeFileHeader(bytes.NewReader(h.encode()))
	require.ErrorIs(t, err, ErrCorruptFile)
}

func TestFileHeaderCodec_ShortReadIsCorrupt(t *testing.T) {
	_, err := decodeFileHeader(bytes.NewReader([]byte{1, 2, 3}))
	require.ErrorIs(t, err, ErrCorruptFile)
}

func TestArchiveHeaderCodecRoundTrip(t *testing.T) {
	h := archiveHeader{Offset: 17, SecondsPerPoint: 10, Points: 6}
	got, err := decodeArchiveHeader(bytes.NewReader(h.encode()))
	require.NoError(t, err)
	require.Equal(t, h, got)
}
