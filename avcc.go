package isobmff

import "strconv"

// AVCParameterSet is one length-prefixed SPS or PPS NAL unit within an
// AVCConfigurationBox.
type AVCParameterSet struct {
	Data []byte
}

// AVCConfigurationBox is the "avcC" box: the AVCDecoderConfigurationRecord,
// the H.264 sibling of HEVCConfigurationBox, same length-prefixed
// parameter-set-array shape at the tail.
type AVCConfigurationBox struct {
	BaseBox
	ConfigurationVersion  uint8
	ProfileIndication     uint8
	ProfileCompatibility  uint8
	LevelIndication       uint8
	LengthSizeMinusOne    uint8
	SequenceParameterSets []AVCParameterSet
	PictureParameterSets  []AVCParameterSet
}

func newAVCConfigurationBox(name FourCC) *AVCConfigurationBox {
	return &AVCConfigurationBox{BaseBox: BaseBox{name: name}}
}

func (b *AVCConfigurationBox) ReadData(parser *Parser, stream *BinaryStream) error {
	version, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	profile, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	compat, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	level, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	lengthSize, err := stream.ReadUint8()
	if err != nil {
		return err
	}

	b.ConfigurationVersion = version
	b.ProfileIndication = profile
	b.ProfileCompatibility = compat
	b.LevelIndication = level
	b.LengthSizeMinusOne = lengthSize & 0x03

	numSPS, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	sets, err := readAVCParameterSets(stream, numSPS&0x1F)
	if err != nil {
		return err
	}
	b.SequenceParameterSets = sets

	numPPS, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	sets, err = readAVCParameterSets(stream, numPPS)
	if err != nil {
		return err
	}
	b.PictureParameterSets = sets

	return nil
}

func readAVCParameterSets(stream *BinaryStream, count uint8) ([]AVCParameterSet, error) {
	sets := make([]AVCParameterSet, 0, count)
	for i := uint8(0); i < count; i++ {
		size, err := stream.ReadBigEndianUint16()
		if err != nil {
			return nil, err
		}
		data := make([]byte, size)
		if err := stream.Read(data); err != nil {
			return nil, err
		}
		sets = append(sets, AVCParameterSet{Data: data})
	}
	return sets, nil
}

func (b *AVCConfigurationBox) Properties() []Property {
	return []Property{
		{Name: "ProfileIndication", Value: strconv.Itoa(int(b.ProfileIndication))},
		{Name: "LevelIndication", Value: strconv.Itoa(int(b.LevelIndication))},
		{Name: "NumSPS", Value: strconv.Itoa(len(b.SequenceParameterSets))},
		{Name: "NumPPS", Value: strconv.Itoa(len(b.PictureParameterSets))},
	}
}
