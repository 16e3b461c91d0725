package isobmff

import "strconv"

// ItemDataBox is the "idat" box: an opaque byte blob that construction
// method 1 ILOC entries index into with an offset relative to this box's
// payload, per the teacher's ItemDataBox.
type ItemDataBox struct {
	BaseBox
	Data []byte
}

func newItemDataBox(name FourCC) *ItemDataBox {
	return &ItemDataBox{BaseBox: BaseBox{name: name}}
}

func (b *ItemDataBox) ReadData(parser *Parser, stream *BinaryStream) error {
	data, err := stream.ReadAllData()
	if err != nil {
		return err
	}
	b.Data = data
	return nil
}

func (b *ItemDataBox) Properties() []Property {
	return []Property{{Name: "Size", Value: strconv.Itoa(len(b.Data))}}
}
