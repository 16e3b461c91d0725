package isobmff

import "strconv"

// AV1ConfigurationBox is the "av1C" box: the AV1CodecConfigurationRecord,
// ported field-for-field from the teacher's ItemAv1ConfigBox/av1Config.
type AV1ConfigurationBox struct {
	BaseBox
	Marker                           uint8
	Version                          uint8
	SeqProfile                       uint8
	SeqLevelIdx0                     uint8
	SeqTier0                         uint8
	HighBitdepth                     uint8
	TwelveBit                        uint8
	Monochrome                       uint8
	ChromaSubsamplingX               uint8
	ChromaSubsamplingY               uint8
	ChromaSamplePosition             uint8
	InitialPresentationDelayPresent  uint8
	InitialPresentationDelayMinusOne uint8
	ConfigOBUs                       []byte
}

func newAV1ConfigurationBox(name FourCC) *AV1ConfigurationBox {
	return &AV1ConfigurationBox{BaseBox: BaseBox{name: name}}
}

func (b *AV1ConfigurationBox) ReadData(parser *Parser, stream *BinaryStream) error {
	first, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.Marker = (first >> 7) & 0x01
	b.Version = first & 0x7F

	second, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.SeqProfile = (second >> 5) & 0x07
	b.SeqLevelIdx0 = second & 0x1F

	third, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.SeqTier0 = (third >> 7) & 0x01
	b.HighBitdepth = (third >> 6) & 0x01
	b.TwelveBit = (third >> 5) & 0x01
	b.Monochrome = (third >> 4) & 0x01
	b.ChromaSubsamplingX = (third >> 3) & 0x01
	b.ChromaSubsamplingY = (third >> 2) & 0x01
	b.ChromaSamplePosition = third & 0x03

	fourth, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.InitialPresentationDelayPresent = (fourth >> 4) & 0x01
	if b.InitialPresentationDelayPresent == 1 {
		b.InitialPresentationDelayMinusOne = fourth & 0x0F
	}

	obus, err := stream.ReadAllData()
	if err != nil {
		return err
	}
	b.ConfigOBUs = obus
	return nil
}

func (b *AV1ConfigurationBox) Properties() []Property {
	return []Property{
		{Name: "SeqProfile", Value: strconv.Itoa(int(b.SeqProfile))},
		{Name: "SeqLevelIdx0", Value: strconv.Itoa(int(b.SeqLevelIdx0))},
	}
}
