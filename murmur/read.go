package murmur

import "fmt"

// readPointAt reads the 16-byte point stored at absolute byte offset.
func (db *Database) readPointAt(offset uint32) (Point, error) {
	buf := make([]byte, pointSize)
	if _, err := db.file.ReadAt(buf, int64(offset)); err != nil {
		return Point{}, fmt.Errorf("%w: reading point at %d: %v", ErrIoError, offset, err)
	}
	return decodePoint(buf), nil
}

// readWindow reads the n consecutive points of archive a starting at byte
// offset start, wrapping at the end of a's data region back to a's start.
// The window may straddle the end of the archive's data region, in which
// case the read is split into two segments.
func (db *Database) readWindow(a Archive, start uint32, n uint32) ([]Point, error) {
	end := start + n*pointSize
	if end <= a.End() {
		buf := make([]byte, n*pointSize)
		if _, err := db.file.ReadAt(buf, int64(start)); err != nil {
			return nil, fmt.Errorf("%w: reading window at %d: %v", ErrIoError, start, err)
		}
		return decodePoints(buf), nil
	}

	firstLen := a.End() - start
	buf := make([]byte, n*pointSize)
	if _, err := db.file.ReadAt(buf[:firstLen], int64(start)); err != nil {
		return nil, fmt.Errorf("%w: reading wrapped window (first segment) at %d: %v", ErrIoError, start, err)
	}
	if _, err := db.file.ReadAt(buf[firstLen:], int64(a.Offset)); err != nil {
		return nil, fmt.Errorf("%w: reading wrapped window (second segment) at %d: %v", ErrIoError, a.Offset, err)
	}
	return decodePoints(buf), nil
}

// Get fetches the point covering timestamp t and returns its value. The
// archive's stored interval is not checked against the requested bucket
// start: a stale, wrapped-over slot returns its old value rather than a
// "not found" error.
func (db *Database) Get(t uint64) (float64, error) {
	idx, err := db.selectArchive(t)
	if err != nil {
		return 0, err
	}
	a := db.Archives[idx]

	p, err := db.readPointAt(a.bucketOffset(t))
	if err != nil {
		return 0, err
	}
	return p.Value, nil
}
