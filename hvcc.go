package isobmff

import "strconv"

// HEVCParameterSetArray is one run of NAL units of a single type
// (VPS/SPS/PPS/...) within an HEVCConfigurationBox.
type HEVCParameterSetArray struct {
	Completeness bool
	NALUnitType  uint8
	NALUnits     [][]byte
}

// HEVCConfigurationBox is the "hvcC" box: the HEVCDecoderConfigurationRecord,
// ported field-for-field from the teacher's ItemHevcConfigBox/hevcConfig.
type HEVCConfigurationBox struct {
	BaseBox
	ConfigurationVersion          uint8
	GeneralProfileSpace           uint8
	GeneralTierFlag               uint8
	GeneralProfileIdc             uint8
	GeneralProfileCompatibility   uint32
	GeneralConstraintIndicator    [6]byte
	GeneralLevelIdc               uint8
	MinSpatialSegmentationIdc     uint16
	ParallelismType               uint8
	ChromaFormat                  uint8
	BitDepthLumaMinus8            uint8
	BitDepthChromaMinus8          uint8
	AvgFrameRate                  uint16
	ConstantFrameRate             uint8
	NumTemporalLayers             uint8
	TemporalIdNested              uint8
	LengthSizeMinusOne            uint8
	ParameterSets                 []HEVCParameterSetArray
}

func newHEVCConfigurationBox(name FourCC) *HEVCConfigurationBox {
	return &HEVCConfigurationBox{BaseBox: BaseBox{name: name}}
}

func (b *HEVCConfigurationBox) ReadData(parser *Parser, stream *BinaryStream) error {
	version, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.ConfigurationVersion = version

	byte2, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.GeneralProfileSpace = (byte2 >> 6) & 0x03
	b.GeneralTierFlag = (byte2 >> 5) & 0x01
	b.GeneralProfileIdc = byte2 & 0x1F

	compat, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}
	b.GeneralProfileCompatibility = compat

	if err := stream.Read(b.GeneralConstraintIndicator[:]); err != nil {
		return err
	}

	levelIdc, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.GeneralLevelIdc = levelIdc

	minSpatial, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	b.MinSpatialSegmentationIdc = minSpatial & 0x0FFF

	parallelism, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.ParallelismType = parallelism & 0x03

	chromaFormat, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.ChromaFormat = chromaFormat & 0x03

	bitDepthLuma, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.BitDepthLumaMinus8 = bitDepthLuma & 0x07

	bitDepthChroma, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.BitDepthChromaMinus8 = bitDepthChroma & 0x07

	avgFrameRate, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	b.AvgFrameRate = avgFrameRate

	packed, err := stream.ReadUint8()
	if err != nil {
		return err
	}
	b.ConstantFrameRate = (packed >> 6) & 0x03
	b.NumTemporalLayers = (packed >> 3) & 0x07
	b.TemporalIdNested = (packed >> 2) & 0x01
	b.LengthSizeMinusOne = packed & 0x03

	numArrays, err := stream.ReadUint8()
	if err != nil {
		return err
	}

	b.ParameterSets = make([]HEVCParameterSetArray, 0, numArrays)
	for i := uint8(0); i < numArrays; i++ {
		header, err := stream.ReadUint8()
		if err != nil {
			return err
		}
		arr := HEVCParameterSetArray{
			Completeness: header&0x80 != 0,
			NALUnitType:  header & 0x3F,
		}

		numNALUnits, err := stream.ReadBigEndianUint16()
		if err != nil {
			return err
		}
		for j := uint16(0); j < numNALUnits; j++ {
			size, err := stream.ReadBigEndianUint16()
			if err != nil {
				return err
			}
			unit := make([]byte, size)
			if err := stream.Read(unit); err != nil {
				return err
			}
			arr.NALUnits = append(arr.NALUnits, unit)
		}
		b.ParameterSets = append(b.ParameterSets, arr)
	}

	return nil
}

func (b *HEVCConfigurationBox) Properties() []Property {
	return []Property{
		{Name: "GeneralProfileIdc", Value: strconv.Itoa(int(b.GeneralProfileIdc))},
		{Name: "GeneralLevelIdc", Value: strconv.Itoa(int(b.GeneralLevelIdc))},
		{Name: "NumParameterSetArrays", Value: strconv.Itoa(len(b.ParameterSets))},
	}
}
