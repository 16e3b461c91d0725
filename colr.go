package isobmff

// ColourInformationBox is the "colr" item property: either an on-the-wire
// nclx triple of enumerated colour parameters, or an embedded ICC profile
// (rICC/prof sub-variant), selected by ColourType.
type ColourInformationBox struct {
	BaseBox
	ColourType              FourCC
	ColourPrimaries         uint16
	TransferCharacteristics uint16
	MatrixCoefficients      uint16
	FullRangeFlag           bool
	ICCProfile              []byte
}

func newColourInformationBox(name FourCC) *ColourInformationBox {
	return &ColourInformationBox{BaseBox: BaseBox{name: name}}
}

func (b *ColourInformationBox) ReadData(parser *Parser, stream *BinaryStream) error {
	colourType, err := stream.ReadFourCC()
	if err != nil {
		return err
	}
	b.ColourType = colourType

	if colourType.String() != "nclx" {
		profile, err := stream.ReadAllData()
		if err != nil {
			return err
		}
		b.ICCProfile = profile
		return nil
	}

	primaries, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	transfer, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	matrix, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	flags, err := stream.ReadUint8()
	if err != nil {
		return err
	}

	b.ColourPrimaries = primaries
	b.TransferCharacteristics = transfer
	b.MatrixCoefficients = matrix
	b.FullRangeFlag = flags&0x80 != 0
	return nil
}

func (b *ColourInformationBox) Properties() []Property {
	return []Property{{Name: "ColourType", Value: b.ColourType.String()}}
}
