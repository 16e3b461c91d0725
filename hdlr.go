package isobmff

// HandlerBox is the "hdlr" box: declares the media handler type and a
// human-readable name.
type HandlerBox struct {
	FullBox
	HandlerType FourCC
	HandlerName string
}

func newHandlerBox(name FourCC) *HandlerBox {
	return &HandlerBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *HandlerBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}

	if _, err := stream.ReadBigEndianUint32(); err != nil { // pre_defined
		return err
	}
	handlerType, err := stream.ReadFourCC()
	if err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		if _, err := stream.ReadBigEndianUint32(); err != nil { // reserved
			return err
		}
	}
	name, err := stream.ReadNULLTerminatedString()
	if err != nil {
		return err
	}

	b.HandlerType = handlerType
	b.HandlerName = name
	return nil
}

func (b *HandlerBox) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props,
		Property{Name: "HandlerType", Value: b.HandlerType.String()},
		Property{Name: "Name", Value: b.HandlerName},
	)
}
