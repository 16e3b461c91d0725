package isobmff

import "strconv"

// SyncSampleBox is the "stss" box: the sample numbers (1-based) of every
// sync (key) sample.
type SyncSampleBox struct {
	FullBox
	SampleNumbers []uint32
}

func newSyncSampleBox(name FourCC) *SyncSampleBox {
	return &SyncSampleBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *SyncSampleBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}
	count, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}
	b.SampleNumbers = make([]uint32, count)
	for i := range b.SampleNumbers {
		n, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		b.SampleNumbers[i] = n
	}
	return nil
}

func (b *SyncSampleBox) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props, Property{Name: "EntryCount", Value: strconv.Itoa(len(b.SampleNumbers))})
}
