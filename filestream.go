package isobmff

import "os"

// fileCore is a core backed by an open file. Unlike dataCore, seeking past
// the current end is not rejected here: the underlying *os.File permits it
// (a subsequent read simply fails), matching ordinary file semantics on
// this platform.
type fileCore struct {
	f *os.File
}

// NewBinaryFileStream opens path and wraps it as a BinaryStream positioned
// at its start.
func NewBinaryFileStream(path string) (*BinaryStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapError(CannotReadFile, err, "opening %q", path)
	}
	return &BinaryStream{core: &fileCore{f: f}}, nil
}

func (c *fileCore) read(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	n, err := readFull(c.f, buf)
	if err != nil {
		return wrapError(InvalidReadSize, err, "reading %d bytes (got %d)", len(buf), n)
	}
	return nil
}

// readFull reads exactly len(buf) bytes, treating a short read as an error.
func readFull(f *os.File, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := f.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (c *fileCore) tell() (uint64, error) {
	pos, err := c.f.Seek(0, os.SEEK_CUR)
	if err != nil {
		return 0, wrapError(InvalidSeekOffset, err, "tell")
	}
	return uint64(pos), nil
}

func (c *fileCore) seek(offset int64, dir SeekDirection) error {
	var whence int
	switch dir {
	case SeekBegin:
		whence = os.SEEK_SET
	case SeekCurrent:
		whence = os.SEEK_CUR
	case SeekEnd:
		whence = os.SEEK_END
	default:
		return newError(InvalidSeekOffset, "unknown seek direction %d", dir)
	}

	if _, err := c.f.Seek(offset, whence); err != nil {
		return wrapError(InvalidSeekOffset, err, "seek offset=%d dir=%d", offset, dir)
	}
	return nil
}
