package isobmff

import "strconv"

// ItemExtent is one (offset, length) range within an item's location entry.
type ItemExtent struct {
	Offset uint64
	Length uint64
}

// ItemLocationEntry maps one item to the extents holding its data, per
// ISO/IEC 14496-12 §8.11.3 / the teacher's ItemLocationBoxEntry.
type ItemLocationEntry struct {
	ItemID             uint16
	ConstructionMethod uint8 // low 4 bits significant; version 1+ only
	DataReferenceIndex uint16
	BaseOffset         uint64
	Extents            []ItemExtent
}

// ItemLocationBox is the "iloc" box: per-item extent tables, with field
// widths for offset/length/base-offset/index taken from four packed 4-bit
// sizes in the header.
type ItemLocationBox struct {
	FullBox
	OffsetSize     uint8
	LengthSize     uint8
	BaseOffsetSize uint8
	IndexSize      uint8
	Items          []ItemLocationEntry
}

func newItemLocationBox(name FourCC) *ItemLocationBox {
	return &ItemLocationBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *ItemLocationBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}

	sizes, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.OffsetSize = sizes >> 4
	b.LengthSize = sizes & 0x0F

	sizes2, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.BaseOffsetSize = sizes2 >> 4
	if b.Version > 0 {
		b.IndexSize = sizes2 & 0x0F
	}

	itemCount, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}

	b.Items = make([]ItemLocationEntry, 0, itemCount)
	for i := 0; i < int(itemCount); i++ {
		var entry ItemLocationEntry

		itemID, err := stream.ReadBigEndianUint16()
		if err != nil {
			return err
		}
		entry.ItemID = itemID

		if b.Version > 0 {
			constructionMethod, err := stream.ReadBigEndianUint16()
			if err != nil {
				return err
			}
			entry.ConstructionMethod = uint8(constructionMethod & 0x0F)
		}

		dataRefIndex, err := stream.ReadBigEndianUint16()
		if err != nil {
			return err
		}
		entry.DataReferenceIndex = dataRefIndex

		if b.BaseOffsetSize > 0 {
			baseOffset, err := readSizedUint(stream, b.BaseOffsetSize)
			if err != nil {
				return err
			}
			entry.BaseOffset = baseOffset
		}

		extentCount, err := stream.ReadBigEndianUint16()
		if err != nil {
			return err
		}
		for j := 0; j < int(extentCount); j++ {
			if b.IndexSize > 0 {
				if _, err := readSizedUint(stream, b.IndexSize); err != nil {
					return err
				}
			}
			offset, err := readSizedUint(stream, b.OffsetSize)
			if err != nil {
				return err
			}
			length, err := readSizedUint(stream, b.LengthSize)
			if err != nil {
				return err
			}
			entry.Extents = append(entry.Extents, ItemExtent{Offset: offset, Length: length})
		}

		b.Items = append(b.Items, entry)
	}

	return nil
}

// readSizedUint reads a big-endian unsigned integer whose width in bytes is
// sizeBytes (one of 0, 4, or 8 in practice, but any of 0/1/2/4/8 is
// accepted, mirroring the teacher's bit-width-agnostic readUintN).
func readSizedUint(stream *BinaryStream, sizeBytes uint8) (uint64, error) {
	switch sizeBytes {
	case 0:
		return 0, nil
	case 1:
		v, err := stream.ReadUint8()
		return uint64(v), err
	case 2:
		v, err := stream.ReadBigEndianUint16()
		return uint64(v), err
	case 4:
		v, err := stream.ReadBigEndianUint32()
		return uint64(v), err
	case 8:
		return stream.ReadBigEndianUint64()
	default:
		return 0, newError(InvalidBoxData, "unsupported field width %d bytes", sizeBytes)
	}
}

func (b *ItemLocationBox) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props, Property{Name: "ItemCount", Value: strconv.Itoa(len(b.Items))})
}
