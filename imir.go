package isobmff

// Mirror axis values for ImageMirror.Axis.
const (
	MirrorVertical   uint8 = 0
	MirrorHorizontal uint8 = 1
)

// ImageMirror is the "imir" item property: mirrors the image about a
// vertical or horizontal axis.
type ImageMirror struct {
	BaseBox
	Axis uint8 // low bit significant
}

func newImageMirror(name FourCC) *ImageMirror {
	return &ImageMirror{BaseBox: BaseBox{name: name}}
}

func (b *ImageMirror) ReadData(parser *Parser, stream *BinaryStream) error {
	v, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.Axis = v & 0x01
	return nil
}

func (b *ImageMirror) Properties() []Property {
	axis := "vertical"
	if b.Axis == MirrorHorizontal {
		axis = "horizontal"
	}
	return []Property{{Name: "Axis", Value: axis}}
}
