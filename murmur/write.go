package murmur

import (
	"fmt"
	"sort"
)

// writePointAt writes a single point at an absolute byte offset. A single
// point never straddles an archive's wrap boundary (its offset is always
// at most archive.End()-pointSize), so no wrap handling is needed here.
func (db *Database) writePointAt(offset uint32, p Point) error {
	if _, err := db.file.WriteAt(p.encode(), int64(offset)); err != nil {
		return fmt.Errorf("%w: writing point at %d: %v", ErrIoError, offset, err)
	}
	return nil
}

// Set writes a single datapoint and cascades the update through every
// coarser archive.
func (db *Database) Set(t uint64, value float64) error {
	idx, err := db.selectArchive(t)
	if err != nil {
		return err
	}
	a := db.Archives[idx]

	bucketStart := a.bucketStart(t)
	if err := db.writePointAt(a.bucketOffset(t), Point{Interval: bucketStart, Value: value}); err != nil {
		return err
	}

	return db.propagateFrom(idx, t)
}

// SetMany writes a batch of (timestamp, value) points, producing results
// observably identical to calling Set once per point in ascending timestamp
// order: when two points in the batch fall into the same bucket of the same
// archive, the one with the larger raw timestamp wins. Points are grouped
// by target archive and bucket before any disk I/O, so a batch touching one
// bucket multiple times performs one write and one propagation instead of
// one per input point.
func (db *Database) SetMany(points []Point) error {
	if len(points) == 0 {
		return nil
	}

	type placement struct {
		value        float64
		rawTimestamp uint64
	}

	perArchive := make(map[int]map[uint64]placement)
	var archiveOrder []int

	for _, p := range points {
		idx, err := db.selectArchive(p.Interval)
		if err != nil {
			return err
		}
		a := db.Archives[idx]
		bucketStart := a.bucketStart(p.Interval)

		buckets, ok := perArchive[idx]
		if !ok {
			buckets = make(map[uint64]placement)
			perArchive[idx] = buckets
			archiveOrder = append(archiveOrder, idx)
		}
		if existing, ok := buckets[bucketStart]; !ok || p.Interval >= existing.rawTimestamp {
			buckets[bucketStart] = placement{value: p.Value, rawTimestamp: p.Interval}
		}
	}

	// Coarsest archive first: every point routed to a coarser archive is
	// older than every point routed to a finer one, so this is ascending
	// timestamp order.
	sort.Sort(sort.Reverse(sort.IntSlice(archiveOrder)))
	for _, idx := range archiveOrder {
		a := db.Archives[idx]
		buckets := perArchive[idx]

		starts := make([]uint64, 0, len(buckets))
		for b := range buckets {
			starts = append(starts, b)
		}
		sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })

		for _, bucketStart := range starts {
			pl := buckets[bucketStart]
			if err := db.writePointAt(a.bucketOffset(bucketStart), Point{Interval: bucketStart, Value: pl.value}); err != nil {
				return err
			}
			if err := db.propagateFrom(idx, bucketStart); err != nil {
				return err
			}
		}
	}

	return nil
}

// propagateFrom cascades the write at archive index idx, timestamp t, into
// every coarser archive in turn. A propagation failure is reported to the
// caller but may leave the file partially updated; no rollback is attempted.
func (db *Database) propagateFrom(idx int, t uint64) error {
	cur := idx
	for db.Archives[cur].coarser != -1 {
		fine := db.Archives[cur]
		coarseIdx := fine.coarser
		coarse := db.Archives[coarseIdx]

		if err := db.propagateOne(fine, coarse, t); err != nil {
			return fmt.Errorf("propagating from archive %d to %d: %w", cur, coarseIdx, err)
		}
		cur = coarseIdx
	}
	return nil
}

// propagateOne aggregates the n fine points feeding the coarse bucket that
// covers t and writes the result into coarse.
func (db *Database) propagateOne(fine, coarse Archive, t uint64) error {
	n := coarse.SecondsPerPoint / fine.SecondsPerPoint

	coarseBucketStart := coarse.bucketStart(t)
	fineStartIndex := (coarseBucketStart % fine.Retention()) / uint64(fine.SecondsPerPoint)
	startOffset := fine.Offset + uint32(fineStartIndex)*pointSize

	points, err := db.readWindow(fine, startOffset, n)
	if err != nil {
		return err
	}

	value, err := aggregate(db.Aggregation, points)
	if err != nil {
		return err
	}

	return db.writePointAt(coarse.bucketOffset(coarseBucketStart), Point{
		Interval: coarseBucketStart,
		Value:    value,
	})
}
