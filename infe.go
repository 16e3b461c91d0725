package isobmff

import "strconv"

// ItemInfoEntry is the "infe" box: identifies one item in the meta item
// map. Field shape depends on version; versions 2 and 3 (the only ones
// produced by modern HEIF/AVIF encoders) add an explicit item_type fourCC
// in place of version 0/1's implicit "mime" typing, per ISO/IEC 14496-12
// §8.11.6.2 and the teacher's ItemInfoEntry (which only handles version 2).
type ItemInfoEntry struct {
	FullBox
	ItemID          uint32
	ProtectionIndex uint16
	ItemType        FourCC
	ItemName        string
	ContentType     string // item_type == "mime"
	ContentEncoding string // item_type == "mime", optional
	ItemURIType     string // item_type == "uri "
}

func newItemInfoEntry(name FourCC) *ItemInfoEntry {
	return &ItemInfoEntry{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (e *ItemInfoEntry) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := e.FullBox.ReadData(parser, stream); err != nil {
		return err
	}

	if e.Version == 3 {
		itemID, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		e.ItemID = itemID
	} else {
		itemID, err := stream.ReadBigEndianUint16()
		if err != nil {
			return err
		}
		e.ItemID = uint32(itemID)
	}

	protectionIndex, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	e.ProtectionIndex = protectionIndex

	if e.Version <= 1 {
		name, err := stream.ReadNULLTerminatedString()
		if err != nil {
			return err
		}
		contentType, err := stream.ReadNULLTerminatedString()
		if err != nil {
			return err
		}
		e.ItemName = name
		e.ContentType = contentType
		if has, err := stream.HasBytesAvailable(); err != nil {
			return err
		} else if has {
			encoding, err := stream.ReadNULLTerminatedString()
			if err != nil {
				return err
			}
			e.ContentEncoding = encoding
		}
		return nil
	}

	itemType, err := stream.ReadFourCC()
	if err != nil {
		return err
	}
	e.ItemType = itemType

	name, err := stream.ReadNULLTerminatedString()
	if err != nil {
		return err
	}
	e.ItemName = name

	switch itemType.String() {
	case "mime":
		contentType, err := stream.ReadNULLTerminatedString()
		if err != nil {
			return err
		}
		e.ContentType = contentType
		if has, err := stream.HasBytesAvailable(); err != nil {
			return err
		} else if has {
			encoding, err := stream.ReadNULLTerminatedString()
			if err != nil {
				return err
			}
			e.ContentEncoding = encoding
		}
	case "uri ":
		uriType, err := stream.ReadNULLTerminatedString()
		if err != nil {
			return err
		}
		e.ItemURIType = uriType
	}

	return nil
}

func (e *ItemInfoEntry) Properties() []Property {
	props := e.FullBox.Properties()
	return append(props,
		Property{Name: "ItemID", Value: strconv.FormatUint(uint64(e.ItemID), 10)},
		Property{Name: "ItemType", Value: e.ItemType.String()},
		Property{Name: "Name", Value: e.ItemName},
	)
}
