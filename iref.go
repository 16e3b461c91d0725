package isobmff

import "strconv"

// ItemReferenceBox is the "iref" box: a FullBox+Container hybrid whose
// children are SingleItemTypeReferenceBox entries (dimg, thmb, cdsc, auxl),
// each naming one relationship between items.
type ItemReferenceBox struct {
	FullBox
	boxList
}

func newItemReferenceBox(name FourCC) *ItemReferenceBox {
	return &ItemReferenceBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *ItemReferenceBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}
	parser.SetInfo(irefVersionInfoKey, b.Version)
	return readChildBoxes(parser, stream, &b.boxList)
}

func (b *ItemReferenceBox) Properties() []Property { return b.FullBox.Properties() }

// irefVersionInfoKey is how SingleItemTypeReferenceBox learns its parent
// ItemReferenceBox's version (item-ID width is 16-bit in version 0, 32-bit
// otherwise) without the Box interface carrying a parent pointer, per
// original_source/include/IREF.hpp's FullBox+Container hybrid shape.
const irefVersionInfoKey = "iref.version"

// SingleItemTypeReferenceBox is the shape shared by "dimg", "thmb", "cdsc",
// and "auxl": one from-item-id plus a list of to-item-ids, per
// original_source/include/CDSC.hpp (a type alias over this exact shape).
type SingleItemTypeReferenceBox struct {
	BaseBox
	FromItemID uint32
	ToItemIDs  []uint32
}

func newSingleItemTypeReferenceBox(name FourCC) *SingleItemTypeReferenceBox {
	return &SingleItemTypeReferenceBox{BaseBox: BaseBox{name: name}}
}

func (b *SingleItemTypeReferenceBox) ReadData(parser *Parser, stream *BinaryStream) error {
	version, _ := parser.GetInfo(irefVersionInfoKey)
	v, _ := version.(uint8)

	if v == 0 {
		fromID, err := stream.ReadBigEndianUint16()
		if err != nil {
			return err
		}
		count, err := stream.ReadBigEndianUint16()
		if err != nil {
			return err
		}
		b.FromItemID = uint32(fromID)
		for i := 0; i < int(count); i++ {
			toID, err := stream.ReadBigEndianUint16()
			if err != nil {
				return err
			}
			b.ToItemIDs = append(b.ToItemIDs, uint32(toID))
		}
		return nil
	}

	fromID, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}
	count, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	b.FromItemID = fromID
	for i := 0; i < int(count); i++ {
		toID, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		b.ToItemIDs = append(b.ToItemIDs, toID)
	}
	return nil
}

func (b *SingleItemTypeReferenceBox) Properties() []Property {
	return []Property{{Name: "FromItemID", Value: strconv.FormatUint(uint64(b.FromItemID), 10)}}
}
