package isobmff

// MetaBox is the "meta" box: a FullBox whose payload is itself a run of
// child boxes (hdlr, iinf, iloc, iref, pitm, idat, ...), per
// spec.md §4.7.
type MetaBox struct {
	FullBox
	boxList
}

func newMetaBox(name FourCC) *MetaBox {
	return &MetaBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *MetaBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}
	return readChildBoxes(parser, stream, &b.boxList)
}

func (b *MetaBox) Properties() []Property { return b.FullBox.Properties() }
