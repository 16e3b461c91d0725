package isobmff

import "strconv"

// ItemInfoBox is the "iinf" box: an entry count (16- or 32-bit depending on
// version) followed by that many "infe" child boxes.
type ItemInfoBox struct {
	FullBox
	boxList
	EntryCount uint32
}

func newItemInfoBox(name FourCC) *ItemInfoBox {
	return &ItemInfoBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *ItemInfoBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}

	if b.Version == 0 {
		count, err := stream.ReadBigEndianUint16()
		if err != nil {
			return err
		}
		b.EntryCount = uint32(count)
	} else {
		count, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		b.EntryCount = count
	}

	return readChildBoxes(parser, stream, &b.boxList)
}

func (b *ItemInfoBox) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props, Property{Name: "EntryCount", Value: strconv.FormatUint(uint64(b.EntryCount), 10)})
}

// Entries returns the box's "infe" children with their concrete type.
func (b *ItemInfoBox) Entries() []*ItemInfoEntry {
	return AllTypedBoxes[*ItemInfoEntry](&b.boxList)
}
