package isobmff

import "strconv"

// CompositionOffsetEntry is one run-length-encoded (sample_count,
// sample_offset) record. sample_offset is unsigned in version 0, signed in
// version 1.
type CompositionOffsetEntry struct {
	SampleCount  uint32
	SampleOffset int32
}

// CompositionOffsetBox is the "ctts" box: composition-time offsets,
// run-length encoded.
type CompositionOffsetBox struct {
	FullBox
	Entries []CompositionOffsetEntry
}

func newCompositionOffsetBox(name FourCC) *CompositionOffsetBox {
	return &CompositionOffsetBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *CompositionOffsetBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}
	count, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}
	b.Entries = make([]CompositionOffsetEntry, count)
	for i := range b.Entries {
		sampleCount, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		var offset int32
		if b.Version == 0 {
			u, err := stream.ReadBigEndianUint32()
			if err != nil {
				return err
			}
			offset = int32(u)
		} else {
			o, err := stream.ReadBigEndianInt32()
			if err != nil {
				return err
			}
			offset = o
		}
		b.Entries[i] = CompositionOffsetEntry{SampleCount: sampleCount, SampleOffset: offset}
	}
	return nil
}

func (b *CompositionOffsetBox) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props, Property{Name: "EntryCount", Value: strconv.Itoa(len(b.Entries))})
}
