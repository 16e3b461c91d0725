package isobmff

// OriginalFormatBox is the "frma" box: names the unencrypted/unrestricted
// sample entry type a protection/restriction scheme replaced.
type OriginalFormatBox struct {
	BaseBox
	DataFormat FourCC
}

func newOriginalFormatBox(name FourCC) *OriginalFormatBox {
	return &OriginalFormatBox{BaseBox: BaseBox{name: name}}
}

func (b *OriginalFormatBox) ReadData(parser *Parser, stream *BinaryStream) error {
	format, err := stream.ReadFourCC()
	if err != nil {
		return err
	}
	b.DataFormat = format
	return nil
}

func (b *OriginalFormatBox) Properties() []Property {
	return []Property{{Name: "DataFormat", Value: b.DataFormat.String()}}
}
