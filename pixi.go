package isobmff

import "strconv"

// PixelInformationProperty is the "pixi" item property: per-channel bit
// depth.
type PixelInformationProperty struct {
	FullBox
	BitsPerChannel []uint8
}

func newPixelInformationProperty(name FourCC) *PixelInformationProperty {
	return &PixelInformationProperty{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *PixelInformationProperty) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}
	numChannels, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.BitsPerChannel = make([]uint8, numChannels)
	for i := range b.BitsPerChannel {
		bits, err := stream.ReadUint8()
		if err != nil {
			return err
		}
		b.BitsPerChannel[i] = bits
	}
	return nil
}

func (b *PixelInformationProperty) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props, Property{Name: "NumChannels", Value: strconv.Itoa(len(b.BitsPerChannel))})
}
