package isobmff

// dataCore is an in-memory core backed by a byte slice, used for a box's
// payload once its bytes have been lifted out of the parent stream (see
// ContainerBox.ReadData / readContainerChild) and for small test fixtures.
type dataCore struct {
	data []byte
	pos  int64
}

// NewBinaryDataStream wraps data as a BinaryStream positioned at offset 0.
func NewBinaryDataStream(data []byte) *BinaryStream {
	return &BinaryStream{core: &dataCore{data: data}}
}

func (d *dataCore) read(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if d.pos < 0 || d.pos+int64(len(buf)) > int64(len(d.data)) {
		return newError(InsufficientData, "requested %d bytes at offset %d, only %d bytes available", len(buf), d.pos, int64(len(d.data))-d.pos)
	}
	copy(buf, d.data[d.pos:d.pos+int64(len(buf))])
	d.pos += int64(len(buf))
	return nil
}

func (d *dataCore) tell() (uint64, error) {
	return uint64(d.pos), nil
}

func (d *dataCore) seek(offset int64, dir SeekDirection) error {
	var base int64
	switch dir {
	case SeekBegin:
		base = 0
	case SeekCurrent:
		base = d.pos
	case SeekEnd:
		base = int64(len(d.data))
	default:
		return newError(InvalidSeekOffset, "unknown seek direction %d", dir)
	}

	target := base + offset
	if target < 0 || target > int64(len(d.data)) {
		return newError(InvalidSeekOffset, "seek to %d is out of bounds [0, %d]", target, len(d.data))
	}
	d.pos = target
	return nil
}
