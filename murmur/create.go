package murmur

import (
	"fmt"
	"os"
)

// Create builds a new murmur database at path. archives need not be sorted
// or validated; Create validates them itself. The underlying file is opened
// with O_EXCL, so Create fails with ErrAlreadyExists if path exists; on any
// other failure the partial file (if any) is left on disk with no rollback.
//
// sparse selects how the archive data region is reserved: true punches a
// single sparse hole (fast, disk-frugal, but not physically allocated, so a
// later write can still hit ENOSPC on a full filesystem); false physically
// allocates it up front, via fallocate where available and a chunked
// zero-write otherwise.
func Create(path string, specs []RawArchive, aggregation AggregationMethod, xFilesFactor uint8, sparse bool) error {
	sorted, err := Validate(specs)
	if err != nil {
		return err
	}
	if !aggregation.valid() {
		return fmt.Errorf("%w: unknown aggregation method %d", ErrInvalidSpec, aggregation)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, path)
		}
		return fmt.Errorf("%w: creating %s: %v", ErrIoError, path, err)
	}
	defer f.Close()

	var maxRetention uint64
	for _, a := range sorted {
		r := uint64(a.SecondsPerPoint) * uint64(a.Points)
		if r > maxRetention {
			maxRetention = r
		}
	}

	fh := fileHeader{
		Aggregation:  aggregation,
		MaxRetention: maxRetention,
		XFilesFactor: xFilesFactor,
		ArchiveCount: uint32(len(sorted)),
	}
	if _, err := f.Write(fh.encode()); err != nil {
		return fmt.Errorf("%w: writing file header: %v", ErrIoError, err)
	}

	headerSize := uint32(fileHeaderSize) + uint32(len(sorted))*archiveHeaderSize
	offset := headerSize
	headers := make([]archiveHeader, len(sorted))
	for i, a := range sorted {
		headers[i] = archiveHeader{
			Offset:          offset,
			SecondsPerPoint: a.SecondsPerPoint,
			Points:          a.Points,
		}
		offset += a.Points * pointSize
	}
	for _, ah := range headers {
		if _, err := f.Write(ah.encode()); err != nil {
			return fmt.Errorf("%w: writing archive header: %v", ErrIoError, err)
		}
	}

	dataSize := offset - headerSize
	if sparse {
		if err := preallocateSparse(f, int64(headerSize), int64(dataSize)); err != nil {
			return fmt.Errorf("%w: preallocating archive data: %v", ErrIoError, err)
		}
	} else {
		if err := preallocate(f, int64(headerSize), int64(dataSize)); err != nil {
			return fmt.Errorf("%w: preallocating archive data: %v", ErrIoError, err)
		}
	}

	return nil
}
