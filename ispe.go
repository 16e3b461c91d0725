package isobmff

import "strconv"

// ImageSpatialExtentsProperty is the "ispe" item property: an item's
// pixel width and height.
type ImageSpatialExtentsProperty struct {
	FullBox
	ImageWidth  uint32
	ImageHeight uint32
}

func newImageSpatialExtentsProperty(name FourCC) *ImageSpatialExtentsProperty {
	return &ImageSpatialExtentsProperty{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *ImageSpatialExtentsProperty) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}
	w, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}
	h, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}
	b.ImageWidth = w
	b.ImageHeight = h
	return nil
}

func (b *ImageSpatialExtentsProperty) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props,
		Property{Name: "ImageWidth", Value: strconv.FormatUint(uint64(b.ImageWidth), 10)},
		Property{Name: "ImageHeight", Value: strconv.FormatUint(uint64(b.ImageHeight), 10)},
	)
}
