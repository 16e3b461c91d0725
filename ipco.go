package isobmff

// ItemPropertyContainerBox is the "ipco" box: a plain (non-FullBox)
// container whose children are the actual property boxes (ispe, irot,
// imir, pixi, colr, hvcC, avcC, av1C, ...), indexed by position for "ipma"
// associations to reference.
type ItemPropertyContainerBox struct {
	BaseBox
	boxList
}

func newItemPropertyContainerBox(name FourCC) *ItemPropertyContainerBox {
	return &ItemPropertyContainerBox{BaseBox: BaseBox{name: name}}
}

func (b *ItemPropertyContainerBox) ReadData(parser *Parser, stream *BinaryStream) error {
	return readChildBoxes(parser, stream, &b.boxList)
}

func (b *ItemPropertyContainerBox) Properties() []Property { return nil }
