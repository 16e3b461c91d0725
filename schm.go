package isobmff

import "strconv"

// SchemeTypeBox is the "schm" box: names the protection or restriction
// scheme applied to a "sinf" box's sibling sample entry.
type SchemeTypeBox struct {
	FullBox
	SchemeType    FourCC
	SchemeVersion uint32
	SchemeURI     string // present only when Flags bit 0 is set
}

func newSchemeTypeBox(name FourCC) *SchemeTypeBox {
	return &SchemeTypeBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *SchemeTypeBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}
	schemeType, err := stream.ReadFourCC()
	if err != nil {
		return err
	}
	schemeVersion, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}
	b.SchemeType = schemeType
	b.SchemeVersion = schemeVersion

	if b.Flags&1 != 0 {
		uri, err := stream.ReadNULLTerminatedString()
		if err != nil {
			return err
		}
		b.SchemeURI = uri
	}
	return nil
}

func (b *SchemeTypeBox) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props,
		Property{Name: "SchemeType", Value: b.SchemeType.String()},
		Property{Name: "SchemeVersion", Value: strconv.FormatUint(uint64(b.SchemeVersion), 10)},
	)
}
