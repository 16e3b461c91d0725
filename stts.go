package isobmff

import "strconv"

// TimeToSampleEntry is one run-length-encoded (sample_count, sample_delta)
// record.
type TimeToSampleEntry struct {
	SampleCount uint32
	SampleDelta uint32
}

// TimeToSampleBox is the "stts" box: decode-time deltas, run-length
// encoded.
type TimeToSampleBox struct {
	FullBox
	Entries []TimeToSampleEntry
}

func newTimeToSampleBox(name FourCC) *TimeToSampleBox {
	return &TimeToSampleBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *TimeToSampleBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}
	count, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}
	b.Entries = make([]TimeToSampleEntry, count)
	for i := range b.Entries {
		sampleCount, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		sampleDelta, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		b.Entries[i] = TimeToSampleEntry{SampleCount: sampleCount, SampleDelta: sampleDelta}
	}
	return nil
}

func (b *TimeToSampleBox) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props, Property{Name: "EntryCount", Value: strconv.Itoa(len(b.Entries))})
}
