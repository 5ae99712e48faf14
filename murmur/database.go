package murmur

import (
	"fmt"
	"os"
)

// Database is an open handle to a murmur file: one aggregation method, one
// max-retention, one x_files_factor, and an ordered (finest-to-coarsest)
// sequence of archives. It exclusively owns its file descriptor for its
// lifetime; it must not be used after Close.
type Database struct {
	Aggregation  AggregationMethod
	MaxRetention uint64
	XFilesFactor uint8
	Archives     []Archive

	file  *os.File
	clock Clock
}

// Open reads the file header and all archive headers from path and wires up
// a Database handle. The Clock defaults to SystemClock; use OpenWithClock to
// inject a test clock.
func Open(path string) (*Database, error) {
	return OpenWithClock(path, SystemClock)
}

// OpenWithClock is Open with an injectable Clock, for deterministic tests.
func OpenWithClock(path string, clock Clock) (*Database, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0666)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrIoError, path, err)
	}

	db, err := readDatabase(f, clock)
	if err != nil {
		f.Close()
		return nil, err
	}
	return db, nil
}

func readDatabase(f *os.File, clock Clock) (*Database, error) {
	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIoError, err)
	}

	fh, err := decodeFileHeader(f)
	if err != nil {
		return nil, err
	}
	if fh.ArchiveCount == 0 {
		return nil, fmt.Errorf("%w: archive_count is 0", ErrCorruptFile)
	}

	archives := make([]Archive, fh.ArchiveCount)
	for i := uint32(0); i < fh.ArchiveCount; i++ {
		ah, err := decodeArchiveHeader(f)
		if err != nil {
			return nil, err
		}
		archives[i] = Archive{
			Offset:          ah.Offset,
			SecondsPerPoint: ah.SecondsPerPoint,
			Points:          ah.Points,
			coarser:         -1,
		}
	}
	for i := range archives {
		if i+1 < len(archives) {
			archives[i].coarser = i + 1
		}
	}

	return &Database{
		Aggregation:  fh.Aggregation,
		MaxRetention: fh.MaxRetention,
		XFilesFactor: fh.XFilesFactor,
		Archives:     archives,
		file:         f,
		clock:        clock,
	}, nil
}

// Close releases the file descriptor and the in-memory archive array. It is
// idempotent on a nil Database.
func (db *Database) Close() error {
	if db == nil || db.file == nil {
		return nil
	}
	err := db.file.Close()
	db.file = nil
	db.Archives = nil
	if err != nil {
		return fmt.Errorf("%w: closing: %v", ErrIoError, err)
	}
	return nil
}

// ArchiveInfo describes one archive for Info/dump_info purposes.
type ArchiveInfo struct {
	Index           int
	SecondsPerPoint uint32
	Points          uint32
	Retention       uint64
	Size            uint32
}

// Info is the structured form of dump_info: a human-readable header
// summary, exposed as data so both the CLI and programmatic callers can use
// it.
type Info struct {
	Aggregation  AggregationMethod
	MaxRetention uint64
	XFilesFactor uint8
	Archives     []ArchiveInfo
}

// Info returns a structured summary of the database header.
func (db *Database) Info() Info {
	infos := make([]ArchiveInfo, len(db.Archives))
	for i, a := range db.Archives {
		infos[i] = ArchiveInfo{
			Index:           i,
			SecondsPerPoint: a.SecondsPerPoint,
			Points:          a.Points,
			Retention:       a.Retention(),
			Size:            a.Size(),
		}
	}
	return Info{
		Aggregation:  db.Aggregation,
		MaxRetention: db.MaxRetention,
		XFilesFactor: db.XFilesFactor,
		Archives:     infos,
	}
}

// SetAggregationMethod rewrites the database's aggregation method in place,
// without reallocating or moving any data.
func (db *Database) SetAggregationMethod(method AggregationMethod) error {
	if !method.valid() {
		return fmt.Errorf("%w: unknown aggregation method %d", ErrCorruptFile, method)
	}

	if _, err := db.file.Seek(0, 0); err != nil {
		return fmt.Errorf("%w: %v", ErrIoError, err)
	}
	if _, err := db.file.Write([]byte{byte(method)}); err != nil {
		return fmt.Errorf("%w: %v", ErrIoError, err)
	}
	db.Aggregation = method
	return nil
}

// selectArchive picks the finest archive whose retention exceeds now-t,
// subject to t not being in the future and the age not exceeding
// MaxRetention.
func (db *Database) selectArchive(t uint64) (int, error) {
	now := uint64(db.clock.Now().Unix())

	if t > now {
		return -1, fmt.Errorf("%w: timestamp %d is in the future (now=%d)", ErrOutOfRange, t, now)
	}
	diff := now - t

	if diff > db.MaxRetention {
		return -1, fmt.Errorf("%w: timestamp %d is %d seconds old, older than max retention %d",
			ErrOutOfRange, t, diff, db.MaxRetention)
	}

	for i, a := range db.Archives {
		if a.Retention() > diff {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: no archive covers timestamp %d", ErrOutOfRange, t)
}
