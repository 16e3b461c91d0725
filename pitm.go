package isobmff

import "strconv"

// PrimaryItemBox is the "pitm" box: names the item ID that is the file's
// primary image/item.
type PrimaryItemBox struct {
	FullBox
	ItemID uint32
}

func newPrimaryItemBox(name FourCC) *PrimaryItemBox {
	return &PrimaryItemBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *PrimaryItemBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}
	if b.Version == 0 {
		itemID, err := stream.ReadBigEndianUint16()
		if err != nil {
			return err
		}
		b.ItemID = uint32(itemID)
		return nil
	}
	itemID, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}
	b.ItemID = itemID
	return nil
}

func (b *PrimaryItemBox) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props, Property{Name: "ItemID", Value: strconv.FormatUint(uint64(b.ItemID), 10)})
}
