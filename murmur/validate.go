package murmur

import (
	"fmt"
	"sort"
)

// Validate sorts archives ascending by SecondsPerPoint and enforces that the
// list is structurally sound: strictly increasing precision and retention,
// integer divisibility between neighboring archives, and enough points in
// each archive to feed one bucket of the next coarser one. It returns the
// sorted slice on success.
func Validate(archives []RawArchive) ([]RawArchive, error) {
	if len(archives) == 0 {
		return nil, ErrEmptySpec
	}

	sorted := make([]RawArchive, len(archives))
	copy(sorted, archives)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SecondsPerPoint < sorted[j].SecondsPerPoint
	})

	for i := 0; i < len(sorted)-1; i++ {
		fine, coarse := sorted[i], sorted[i+1]

		// I1: strictly ascending, no duplicate precisions.
		if fine.SecondsPerPoint >= coarse.SecondsPerPoint {
			return nil, fmt.Errorf("%w: archive %d and %d have duplicate seconds_per_point %d",
				ErrStructuralViolation, i, i+1, fine.SecondsPerPoint)
		}

		// I2: coarse precision must be an integer multiple of fine precision.
		if coarse.SecondsPerPoint%fine.SecondsPerPoint != 0 {
			return nil, fmt.Errorf("%w: archive %d seconds_per_point %d does not evenly divide archive %d seconds_per_point %d",
				ErrStructuralViolation, i, fine.SecondsPerPoint, i+1, coarse.SecondsPerPoint)
		}

		fineRetention := uint64(fine.SecondsPerPoint) * uint64(fine.Points)
		coarseRetention := uint64(coarse.SecondsPerPoint) * uint64(coarse.Points)

		// I3: strictly increasing retention.
		if coarseRetention <= fineRetention {
			return nil, fmt.Errorf("%w: archive %d retention %d is not greater than archive %d retention %d",
				ErrStructuralViolation, i+1, coarseRetention, i, fineRetention)
		}

		// I4: fine archive must hold enough points to feed one coarse bucket.
		fanIn := coarse.SecondsPerPoint / fine.SecondsPerPoint
		if fine.Points < fanIn {
			return nil, fmt.Errorf("%w: archive %d has %d points, needs at least %d to feed archive %d",
				ErrStructuralViolation, i, fine.Points, fanIn, i+1)
		}
	}

	return sorted, nil
}
