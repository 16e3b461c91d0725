package isobmff

import "strconv"

// SampleDescriptionBox is the "stsd" box: an entry count followed by that
// many sample-entry children (hvc1, hev1, avc1, avc3, av01, mp4a, ...),
// dispatched through the registry like any other container.
type SampleDescriptionBox struct {
	FullBox
	boxList
	EntryCount uint32
}

func newSampleDescriptionBox(name FourCC) *SampleDescriptionBox {
	return &SampleDescriptionBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *SampleDescriptionBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}
	count, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}
	b.EntryCount = count
	return readChildBoxes(parser, stream, &b.boxList)
}

func (b *SampleDescriptionBox) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props, Property{Name: "EntryCount", Value: strconv.FormatUint(uint64(b.EntryCount), 10)})
}
