package isobmff

import "strconv"

// ImageRotation is the "irot" item property: rotation in multiples of 90
// degrees, counter-clockwise.
type ImageRotation struct {
	BaseBox
	Angle uint8 // low 2 bits significant: 0-3
}

func newImageRotation(name FourCC) *ImageRotation {
	return &ImageRotation{BaseBox: BaseBox{name: name}}
}

func (b *ImageRotation) ReadData(parser *Parser, stream *BinaryStream) error {
	v, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.Angle = v & 0x03
	return nil
}

func (b *ImageRotation) Properties() []Property {
	return []Property{{Name: "Angle", Value: strconv.Itoa(int(b.Angle) * 90)}}
}
