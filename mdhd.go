package isobmff

import "strconv"

// MediaHeaderBox is the "mdhd" box: per-media-track timing and language,
// version-gated the same way as MovieHeaderBox/TrackHeaderBox.
type MediaHeaderBox struct {
	FullBox
	CreationTime     uint64
	ModificationTime uint64
	Timescale        uint32
	Duration         uint64
	Language         string // ISO-639-2/T, packed 5 bits per character
}

func newMediaHeaderBox(name FourCC) *MediaHeaderBox {
	return &MediaHeaderBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *MediaHeaderBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}

	if b.Version == 1 {
		creation, err := stream.ReadBigEndianUint64()
		if err != nil {
			return err
		}
		modification, err := stream.ReadBigEndianUint64()
		if err != nil {
			return err
		}
		timescale, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		duration, err := stream.ReadBigEndianUint64()
		if err != nil {
			return err
		}
		b.CreationTime, b.ModificationTime, b.Timescale, b.Duration = creation, modification, timescale, duration
	} else {
		creation, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		modification, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		timescale, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		duration, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		b.CreationTime, b.ModificationTime, b.Timescale, b.Duration = uint64(creation), uint64(modification), timescale, uint64(duration)
	}

	packed, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	if _, err := stream.ReadBigEndianUint16(); err != nil { // predefined
		return err
	}

	b.Language = unpackLanguage(packed)
	return nil
}

// unpackLanguage decodes the 15-bit, 3-character packed language code (bit
// 15 is a padding zero; each character is 5 bits, biased by 0x60, per
// ISO-639-2/T as used throughout ISO/IEC 14496-12).
func unpackLanguage(packed uint16) string {
	var out [3]byte
	for i := 2; i >= 0; i-- {
		out[i] = byte((packed&0x1F)+0x60)
		packed >>= 5
	}
	return string(out[:])
}

func (b *MediaHeaderBox) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props,
		Property{Name: "Timescale", Value: strconv.FormatUint(uint64(b.Timescale), 10)},
		Property{Name: "Duration", Value: strconv.FormatUint(b.Duration, 10)},
		Property{Name: "Language", Value: b.Language},
	)
}
