package murmur

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// On-disk layout sizes, all big-endian, all packed (no compiler padding).
const (
	// fileHeaderSize is the byte size of FileHeader: aggregation(1) +
	// max_retention(8) + x_files_factor(1) + archive_count(4) + 3 reserved
	// bytes, kept zero, that round the header out to a 17-byte record.
	fileHeaderSize = 17

	// archiveHeaderSize is the byte size of one ArchiveHeader record:
	// offset(4) + seconds_per_point(4) + points(4).
	archiveHeaderSize = 12

	// pointSize is the byte size of one Point record: interval(8) + value(8).
	pointSize = 16
)

// AggregationMethod selects how propagation reduces a window of fine points
// into one coarse value.
type AggregationMethod uint8

const (
	Average AggregationMethod = 1
	Sum     AggregationMethod = 2
	Last    AggregationMethod = 3
	Max     AggregationMethod = 4
	Min     AggregationMethod = 5
)

func (m AggregationMethod) String() string {
	switch m {
	case Average:
		return "average"
	case Sum:
		return "sum"
	case Last:
		return "last"
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(m))
	}
}

func (m AggregationMethod) valid() bool {
	return m >= Average && m <= Min
}

// fileHeader is the on-disk file header.
type fileHeader struct {
	Aggregation    AggregationMethod
	MaxRetention   uint64
	XFilesFactor   uint8
	ArchiveCount   uint32
}

func (h fileHeader) encode() []byte {
	buf := make([]byte, fileHeaderSize)
	buf[0] = byte(h.Aggregation)
	binary.BigEndian.PutUint64(buf[1:9], h.MaxRetention)
	buf[9] = h.XFilesFactor
	binary.BigEndian.PutUint32(buf[10:14], h.ArchiveCount)
	// buf[14:17] left zero: reserved.
	return buf
}

func decodeFileHeader(r io.Reader) (fileHeader, error) {
	buf := make([]byte, fileHeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return fileHeader{}, fmt.Errorf("%w: reading file header: %v", ErrCorruptFile, err)
	}

	h := fileHeader{
		Aggregation:  AggregationMethod(buf[0]),
		MaxRetention: binary.BigEndian.Uint64(buf[1:9]),
		XFilesFactor: buf[9],
		ArchiveCount: binary.BigEndian.Uint32(buf[10:14]),
	}
	if !h.Aggregation.valid() {
		return fileHeader{}, fmt.Errorf("%w: unknown aggregation method %d", ErrCorruptFile, h.Aggregation)
	}
	return h, nil
}

// archiveHeader is the on-disk archive header.
type archiveHeader struct {
	Offset          uint32
	SecondsPerPoint uint32
	Points          uint32
}

func (h archiveHeader) encode() []byte {
	buf := make([]byte, archiveHeaderSize)
	binary.BigEndian.PutUint32(buf[0:4], h.Offset)
	binary.BigEndian.PutUint32(buf[4:8], h.SecondsPerPoint)
	binary.BigEndian.PutUint32(buf[8:12], h.Points)
	return buf
}

func decodeArchiveHeader(r io.Reader) (archiveHeader, error) {
	buf := make([]byte, archiveHeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return archiveHeader{}, fmt.Errorf("%w: reading archive header: %v", ErrCorruptFile, err)
	}
	return archiveHeader{
		Offset:          binary.BigEndian.Uint32(buf[0:4]),
		SecondsPerPoint: binary.BigEndian.Uint32(buf[4:8]),
		Points:          binary.BigEndian.Uint32(buf[8:12]),
	}, nil
}

// Point is a single 16-byte record: the start of the time bucket it belongs
// to, and the value stored there. Interval == 0 denotes an empty slot.
type Point struct {
	Interval uint64
	Value    float64
}

// IsEmpty reports whether p is an unwritten slot.
func (p Point) IsEmpty() bool { return p.Interval == 0 }

func (p Point) encode() []byte {
	buf := make([]byte, pointSize)
	binary.BigEndian.PutUint64(buf[0:8], p.Interval)
	binary.BigEndian.PutUint64(buf[8:16], math.Float64bits(p.Value))
	return buf
}

func decodePoint(buf []byte) Point {
	return Point{
		Interval: binary.BigEndian.Uint64(buf[0:8]),
		Value:    math.Float64frombits(binary.BigEndian.Uint64(buf[8:16])),
	}
}

func decodePoints(buf []byte) []Point {
	n := len(buf) / pointSize
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = decodePoint(buf[i*pointSize : (i+1)*pointSize])
	}
	return points
}

func encodePoints(points []Point) []byte {
	buf := make([]byte, len(points)*pointSize)
	for i, p := range points {
		copy(buf[i*pointSize:(i+1)*pointSize], p.encode())
	}
	return buf
}
