package isobmff

import (
	"bytes"
	"strings"
)

// SeekDirection selects the reference point for BinaryStream.Seek.
type SeekDirection int

const (
	SeekCurrent SeekDirection = iota
	SeekBegin
	SeekEnd
)

// core is the minimal byte-addressable surface a BinaryStream is built on.
// dataCore backs an in-memory buffer, fileCore backs an open file; every
// typed reader on BinaryStream is implemented once, in terms of this
// interface, rather than duplicated per backend.
type core interface {
	read(buf []byte) error
	tell() (uint64, error)
	seek(offset int64, dir SeekDirection) error
}

// BinaryStream is a position-tracked, endian-aware reader over a seekable
// byte source. It never assumes host byte order: every multi-byte read
// picks an endianness explicitly.
type BinaryStream struct {
	core core
}

// Read copies exactly len(buf) bytes from the stream, advancing its
// position. Short reads are an error, not a partial fill.
func (s *BinaryStream) Read(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return s.core.read(buf)
}

// Tell returns the stream's current absolute position.
func (s *BinaryStream) Tell() (uint64, error) {
	return s.core.tell()
}

// Seek moves the stream's position relative to dir.
func (s *BinaryStream) Seek(offset int64, dir SeekDirection) error {
	return s.core.seek(offset, dir)
}

// HasBytesAvailable reports whether any bytes remain between the current
// position and the end of the stream.
func (s *BinaryStream) HasBytesAvailable() (bool, error) {
	n, err := s.AvailableBytes()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AvailableBytes returns the number of bytes remaining after the current
// position. It does so with a transient Tell -> Seek(End) -> Tell ->
// Seek(Begin) round trip and restores the original position exactly before
// returning successfully. If the second Tell fails, or the original
// position does not fit in an int64, the error is returned with the stream
// left at its end.
func (s *BinaryStream) AvailableBytes() (uint64, error) {
	cur, err := s.Tell()
	if err != nil {
		return 0, err
	}

	if err := s.Seek(0, SeekEnd); err != nil {
		return 0, err
	}

	end, err := s.Tell()
	if err != nil {
		return 0, err
	}

	off, castErr := numericCast[int64](cur)
	if castErr == nil {
		if err := s.Seek(off, SeekBegin); err != nil {
			return 0, err
		}
	}
	if castErr != nil {
		return 0, castErr
	}

	return end - cur, nil
}

// Get peeks length bytes at absolute position pos without altering the
// stream's logical position.
func (s *BinaryStream) Get(buf []byte, pos uint64) error {
	cur, err := s.Tell()
	if err != nil {
		return err
	}

	off, err := numericCast[int64](pos)
	if err != nil {
		return err
	}

	if err := s.Seek(off, SeekBegin); err != nil {
		return err
	}

	if err := s.Read(buf); err != nil {
		return err
	}

	curOff, err := numericCast[int64](cur)
	if err != nil {
		return err
	}
	return s.Seek(curOff, SeekBegin)
}

// ReadAllData reads every remaining byte in the stream.
func (s *BinaryStream) ReadAllData() ([]byte, error) {
	n, err := s.AvailableBytes()
	if err != nil {
		return nil, err
	}
	size, err := numericCast[int](n)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if err := s.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadUint8 reads a single byte.
func (s *BinaryStream) ReadUint8() (uint8, error) {
	var buf [1]byte
	if err := s.Read(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadInt8 reads a single signed byte.
func (s *BinaryStream) ReadInt8() (int8, error) {
	v, err := s.ReadUint8()
	return int8(v), err
}

// ReadBigEndianUint16 reads a 16-bit big-endian unsigned integer.
func (s *BinaryStream) ReadBigEndianUint16() (uint16, error) {
	var buf [2]byte
	if err := s.Read(buf[:]); err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

// ReadLittleEndianUint16 reads a 16-bit little-endian unsigned integer.
func (s *BinaryStream) ReadLittleEndianUint16() (uint16, error) {
	var buf [2]byte
	if err := s.Read(buf[:]); err != nil {
		return 0, err
	}
	return uint16(buf[1])<<8 | uint16(buf[0]), nil
}

// ReadBigEndianUint32 reads a 32-bit big-endian unsigned integer.
func (s *BinaryStream) ReadBigEndianUint32() (uint32, error) {
	var buf [4]byte
	if err := s.Read(buf[:]); err != nil {
		return 0, err
	}
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]), nil
}

// ReadLittleEndianUint32 reads a 32-bit little-endian unsigned integer.
func (s *BinaryStream) ReadLittleEndianUint32() (uint32, error) {
	var buf [4]byte
	if err := s.Read(buf[:]); err != nil {
		return 0, err
	}
	return uint32(buf[3])<<24 | uint32(buf[2])<<16 | uint32(buf[1])<<8 | uint32(buf[0]), nil
}

// ReadBigEndianInt32 reads a signed 32-bit big-endian integer using the
// source library's sign-magnitude interpretation (high bit is the sign,
// low 31 bits are the magnitude) rather than two's complement. This is
// almost certainly a bug in the original for fields the standard specifies
// as two's complement, but is replicated verbatim for bit-compatibility;
// see the Open Questions note in SPEC_FULL.md.
func (s *BinaryStream) ReadBigEndianInt32() (int32, error) {
	u, err := s.ReadBigEndianUint32()
	if err != nil {
		return 0, err
	}
	magnitude := int32(u & 0x7FFFFFFF)
	if u&0x80000000 != 0 {
		return -magnitude, nil
	}
	return magnitude, nil
}

// ReadBigEndianUint64 reads a 64-bit big-endian unsigned integer.
func (s *BinaryStream) ReadBigEndianUint64() (uint64, error) {
	var buf [8]byte
	if err := s.Read(buf[:]); err != nil {
		return 0, err
	}
	var v uint64
	for _, b := range buf {
		v = v<<8 | uint64(b)
	}
	return v, nil
}

// ReadLittleEndianUint64 reads a 64-bit little-endian unsigned integer.
func (s *BinaryStream) ReadLittleEndianUint64() (uint64, error) {
	var buf [8]byte
	if err := s.Read(buf[:]); err != nil {
		return 0, err
	}
	var v uint64
	for i := len(buf) - 1; i >= 0; i-- {
		v = v<<8 | uint64(buf[i])
	}
	return v, nil
}

// ReadBigEndianFixedPoint reads a big-endian fixed-point value with the
// given integer/fractional bit widths. When the two widths sum to 16, a
// 16-bit word is read; otherwise a 32-bit word is read.
func (s *BinaryStream) ReadBigEndianFixedPoint(integerBits, fractionalBits uint) (float64, error) {
	n, err := s.readFixedPointWord(integerBits, fractionalBits, s.ReadBigEndianUint16, s.ReadBigEndianUint32)
	if err != nil {
		return 0, err
	}
	return fixedPointValue(n, fractionalBits), nil
}

// ReadLittleEndianFixedPoint is the little-endian counterpart of
// ReadBigEndianFixedPoint.
func (s *BinaryStream) ReadLittleEndianFixedPoint(integerBits, fractionalBits uint) (float64, error) {
	n, err := s.readFixedPointWord(integerBits, fractionalBits, s.ReadLittleEndianUint16, s.ReadLittleEndianUint32)
	if err != nil {
		return 0, err
	}
	return fixedPointValue(n, fractionalBits), nil
}

func (s *BinaryStream) readFixedPointWord(integerBits, fractionalBits uint, read16 func() (uint16, error), read32 func() (uint32, error)) (uint32, error) {
	if integerBits+fractionalBits == 16 {
		n, err := read16()
		return uint32(n), err
	}
	return read32()
}

func fixedPointValue(n uint32, fractionalBits uint) float64 {
	integer := n >> fractionalBits
	fractionalMask := uint32(1)<<fractionalBits - 1
	fractional := float64(n&fractionalMask) / float64(uint32(1)<<fractionalBits)
	return float64(integer) + fractional
}

// ReadFourCC reads a raw 4-byte type tag, bytes preserved verbatim (no
// trimming, no null-termination).
func (s *BinaryStream) ReadFourCC() (FourCC, error) {
	var fcc FourCC
	if err := s.Read(fcc[:]); err != nil {
		return FourCC{}, err
	}
	return fcc, nil
}

// ReadPascalString reads a single-byte length prefix followed by that many
// bytes.
func (s *BinaryStream) ReadPascalString() (string, error) {
	length, err := s.ReadUint8()
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}
	buf := make([]byte, length)
	if err := s.Read(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadString reads a fixed-length run of length bytes, truncating at the
// first NUL.
func (s *BinaryStream) ReadString(length int) (string, error) {
	buf := make([]byte, length)
	if err := s.Read(buf); err != nil {
		return "", err
	}
	if idx := bytes.IndexByte(buf, 0); idx >= 0 {
		buf = buf[:idx]
	}
	return string(buf), nil
}

// ReadNULLTerminatedString reads bytes until a 0x00 terminator, which is
// consumed but not included in the result. If EOF is reached first, this
// returns the stream's short-read error (InsufficientData for an in-memory
// stream, InvalidReadSize for a file stream) and an empty string.
func (s *BinaryStream) ReadNULLTerminatedString() (string, error) {
	var sb strings.Builder
	var b [1]byte
	for {
		if err := s.Read(b[:]); err != nil {
			return "", err
		}
		if b[0] == 0 {
			return sb.String(), nil
		}
		sb.WriteByte(b[0])
	}
}

// ReadMatrix reads a 3x3 transformation matrix: nine 32-bit big-endian
// integers in row order (a, b, u, c, d, v, tx, ty, w).
func (s *BinaryStream) ReadMatrix() (Matrix, error) {
	vals := make([]int32, 9)
	for i := range vals {
		u, err := s.ReadBigEndianUint32()
		if err != nil {
			return Matrix{}, err
		}
		vals[i] = int32(u)
	}
	return Matrix{
		A: vals[0], B: vals[1], U: vals[2],
		C: vals[3], D: vals[4], V: vals[5],
		TX: vals[6], TY: vals[7], W: vals[8],
	}, nil
}
