package murmur

// Archive is one ring buffer inside the database, at one fixed granularity.
// Coarser points out to index -1 at the tail of Database.Archives.
type Archive struct {
	Offset          uint32
	SecondsPerPoint uint32
	Points          uint32

	// coarser is the index into Database.Archives of the next coarser
	// archive, or -1 if this is the coarsest.
	coarser int
}

// Retention is the time window, in seconds, this archive covers before
// wrapping.
func (a Archive) Retention() uint64 {
	return uint64(a.SecondsPerPoint) * uint64(a.Points)
}

// Size is the byte size of this archive's data region.
func (a Archive) Size() uint32 {
	return a.Points * pointSize
}

// End is the absolute byte offset just past this archive's data region.
func (a Archive) End() uint32 {
	return a.Offset + a.Size()
}

// bucketStart returns the start of the seconds-per-point-aligned window
// containing t.
func (a Archive) bucketStart(t uint64) uint64 {
	return t - (t % uint64(a.SecondsPerPoint))
}

// bucketOffset computes the byte offset inside the file of the bucket that
// timestamp t maps to within archive a.
func (a Archive) bucketOffset(t uint64) uint32 {
	bucketStart := a.bucketStart(t)
	index := (bucketStart % a.Retention()) / uint64(a.SecondsPerPoint)
	return a.Offset + uint32(index)*pointSize
}
