package murmur

import "fmt"

// DumpPoint is one yielded record from Dump: which archive it came from and
// the point itself.
type DumpPoint struct {
	ArchiveIndex int
	Point        Point
}

// Dump iterates every archive in finest-to-coarsest order and calls fn for
// every non-empty point (Interval != 0), matching murmur.c's dump command.
// Iteration stops at the first error returned by fn or by a read.
func (db *Database) Dump(fn func(DumpPoint) error) error {
	for i, a := range db.Archives {
		buf := make([]byte, a.Size())
		if _, err := db.file.ReadAt(buf, int64(a.Offset)); err != nil {
			return fmt.Errorf("%w: reading archive %d: %v", ErrIoError, i, err)
		}

		for _, p := range decodePoints(buf) {
			if p.IsEmpty() {
				continue
			}
			if err := fn(DumpPoint{ArchiveIndex: i, Point: p}); err != nil {
				return err
			}
		}
	}
	return nil
}
