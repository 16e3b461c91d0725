package isobmff

import "strconv"

// sampleEntryHeader is the 6-reserved-bytes + data_reference_index prefix
// shared by every entry in a "stsd" table, per ISO/IEC 14496-12 §8.5.2.
type sampleEntryHeader struct {
	DataReferenceIndex uint16
}

func (h *sampleEntryHeader) read(stream *BinaryStream) error {
	var reserved [6]byte
	if err := stream.Read(reserved[:]); err != nil {
		return err
	}
	idx, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	h.DataReferenceIndex = idx
	return nil
}

// VisualSampleEntry backs "hvc1", "hev1", "avc1", "avc3", and "av01": a
// fixed visual-geometry header followed by the codec configuration record
// and any sibling boxes (colr, ...), read via the generic container loop.
type VisualSampleEntry struct {
	BaseBox
	boxList
	sampleEntryHeader
	Width            uint16
	Height           uint16
	HorizResolution  float64 // 16.16 fixed-point
	VertResolution   float64 // 16.16 fixed-point
	FrameCount       uint16
	CompressorName   string
	Depth            uint16
}

func newVisualSampleEntry(name FourCC) *VisualSampleEntry {
	return &VisualSampleEntry{BaseBox: BaseBox{name: name}}
}

func (b *VisualSampleEntry) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.sampleEntryHeader.read(stream); err != nil {
		return err
	}

	if _, err := stream.ReadBigEndianUint16(); err != nil { // pre_defined
		return err
	}
	if _, err := stream.ReadBigEndianUint16(); err != nil { // reserved
		return err
	}
	for i := 0; i < 3; i++ {
		if _, err := stream.ReadBigEndianUint32(); err != nil { // pre_defined
			return err
		}
	}

	width, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	height, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	horizRes, err := stream.ReadBigEndianFixedPoint(16, 16)
	if err != nil {
		return err
	}
	vertRes, err := stream.ReadBigEndianFixedPoint(16, 16)
	if err != nil {
		return err
	}
	if _, err := stream.ReadBigEndianUint32(); err != nil { // reserved
		return err
	}
	frameCount, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}

	var nameBuf [32]byte
	if err := stream.Read(nameBuf[:]); err != nil {
		return err
	}
	nameLen := int(nameBuf[0])
	if nameLen > 31 {
		nameLen = 31
	}
	// CompressorName keeps the leading length byte rather than stripping it:
	// original_source/test/AVC3_unittest.cpp pins GetCompressorName() to
	// "\x15Lavc61.19.101 libx264", length byte included.

	depth, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	if _, err := stream.ReadBigEndianUint16(); err != nil { // pre_defined, -1
		return err
	}

	b.Width = width
	b.Height = height
	b.HorizResolution = horizRes
	b.VertResolution = vertRes
	b.FrameCount = frameCount
	b.CompressorName = string(nameBuf[0 : 1+nameLen])
	b.Depth = depth

	return readChildBoxes(parser, stream, &b.boxList)
}

func (b *VisualSampleEntry) Properties() []Property {
	return []Property{
		{Name: "Width", Value: strconv.FormatUint(uint64(b.Width), 10)},
		{Name: "Height", Value: strconv.FormatUint(uint64(b.Height), 10)},
		{Name: "CompressorName", Value: b.CompressorName},
		{Name: "Depth", Value: strconv.FormatUint(uint64(b.Depth), 10)},
	}
}

// AudioSampleEntry backs "mp4a": channel geometry followed by an ESDS (or
// similar) configuration child box.
type AudioSampleEntry struct {
	BaseBox
	boxList
	sampleEntryHeader
	ChannelCount uint16
	SampleSize   uint16
	SampleRate   uint32 // high 16 bits significant; low 16 reserved
}

func newAudioSampleEntry(name FourCC) *AudioSampleEntry {
	return &AudioSampleEntry{BaseBox: BaseBox{name: name}}
}

func (b *AudioSampleEntry) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.sampleEntryHeader.read(stream); err != nil {
		return err
	}

	for i := 0; i < 2; i++ {
		if _, err := stream.ReadBigEndianUint32(); err != nil { // reserved
			return err
		}
	}

	channelCount, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	sampleSize, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	if _, err := stream.ReadBigEndianUint16(); err != nil { // pre_defined
		return err
	}
	if _, err := stream.ReadBigEndianUint16(); err != nil { // reserved
		return err
	}
	sampleRate, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}

	b.ChannelCount = channelCount
	b.SampleSize = sampleSize
	b.SampleRate = sampleRate

	return readChildBoxes(parser, stream, &b.boxList)
}

func (b *AudioSampleEntry) Properties() []Property {
	return []Property{
		{Name: "ChannelCount", Value: strconv.FormatUint(uint64(b.ChannelCount), 10)},
		{Name: "SampleSize", Value: strconv.FormatUint(uint64(b.SampleSize), 10)},
		{Name: "SampleRate", Value: strconv.FormatUint(uint64(b.SampleRate>>16), 10)},
	}
}
