package isobmff

import "strconv"

// PropertyAssociation is one (essential, property-index) pair linking an
// item to an entry in the sibling ItemPropertyContainerBox.
type PropertyAssociation struct {
	Essential bool
	Index     uint16
}

// ItemPropertyAssociationEntry lists every property associated with one
// item.
type ItemPropertyAssociationEntry struct {
	ItemID       uint32
	Associations []PropertyAssociation
}

// ItemPropertyAssociation is the "ipma" box: maps each item to the indices
// of the properties (in the sibling ItemPropertyContainerBox) that apply
// to it, with a per-association essential flag.
type ItemPropertyAssociation struct {
	FullBox
	Entries []ItemPropertyAssociationEntry
}

func newItemPropertyAssociation(name FourCC) *ItemPropertyAssociation {
	return &ItemPropertyAssociation{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *ItemPropertyAssociation) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}

	count, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}

	b.Entries = make([]ItemPropertyAssociationEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		var itemID uint32
		if b.Version < 1 {
			id, err := stream.ReadBigEndianUint16()
			if err != nil {
				return err
			}
			itemID = uint32(id)
		} else {
			id, err := stream.ReadBigEndianUint32()
			if err != nil {
				return err
			}
			itemID = id
		}

		assocCount, err := stream.ReadUint8()
		if err != nil {
			return err
		}

		entry := ItemPropertyAssociationEntry{ItemID: itemID}
		for j := uint8(0); j < assocCount; j++ {
			first, err := stream.ReadUint8()
			if err != nil {
				return err
			}
			essential := first&0x80 != 0
			first &^= 0x80

			var index uint16
			if b.Flags&1 != 0 {
				second, err := stream.ReadUint8()
				if err != nil {
					return err
				}
				index = uint16(first)<<8 | uint16(second)
			} else {
				index = uint16(first)
			}

			entry.Associations = append(entry.Associations, PropertyAssociation{
				Essential: essential,
				Index:     index,
			})
		}
		b.Entries = append(b.Entries, entry)
	}

	return nil
}

func (b *ItemPropertyAssociation) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props, Property{Name: "EntryCount", Value: strconv.Itoa(len(b.Entries))})
}
