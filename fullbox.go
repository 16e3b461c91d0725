package isobmff

import "strconv"

// FullBox is a Box variant whose payload begins with a one-byte version
// followed by a three-byte (24-bit) big-endian flags field. Every other
// field follows those four bytes.
type FullBox struct {
	BaseBox
	Version uint8
	Flags   uint32 // low 24 bits significant
}

// ReadData consumes the version/flags header. Concrete FullBox-derived
// decoders call this first, then read their own fields from the same
// stream.
func (b *FullBox) ReadData(parser *Parser, stream *BinaryStream) error {
	version, err := stream.ReadUint8()
	if err != nil {
		return err
	}

	var flagBytes [3]byte
	if err := stream.Read(flagBytes[:]); err != nil {
		return err
	}

	b.Version = version
	b.Flags = uint32(flagBytes[0])<<16 | uint32(flagBytes[1])<<8 | uint32(flagBytes[2])
	return nil
}

func (b *FullBox) Properties() []Property {
	return []Property{
		{Name: "Version", Value: strconv.Itoa(int(b.Version))},
		{Name: "Flags", Value: strconv.FormatUint(uint64(b.Flags), 16)},
	}
}
