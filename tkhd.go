package isobmff

import "strconv"

// TrackHeaderBox is the "tkhd" box: per-track timing, geometry, and
// presentation metadata, ported from original_source/src/TKHD.cpp.
type TrackHeaderBox struct {
	FullBox
	CreationTime     uint64
	ModificationTime uint64
	TrackID          uint32
	Duration         uint64
	Layer            int16
	AlternateGroup   int16
	Volume           uint16 // 8.8 fixed-point
	Matrix           Matrix
	Width            float64 // 16.16 fixed-point
	Height           float64 // 16.16 fixed-point
}

func newTrackHeaderBox(name FourCC) *TrackHeaderBox {
	return &TrackHeaderBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *TrackHeaderBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}

	if b.Version == 1 {
		creation, err := stream.ReadBigEndianUint64()
		if err != nil {
			return err
		}
		modification, err := stream.ReadBigEndianUint64()
		if err != nil {
			return err
		}
		trackID, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		if _, err := stream.ReadBigEndianUint32(); err != nil { // reserved
			return err
		}
		duration, err := stream.ReadBigEndianUint64()
		if err != nil {
			return err
		}
		b.CreationTime, b.ModificationTime, b.TrackID, b.Duration = creation, modification, trackID, duration
	} else {
		creation, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		modification, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		trackID, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		if _, err := stream.ReadBigEndianUint32(); err != nil { // reserved
			return err
		}
		duration, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		b.CreationTime, b.ModificationTime, b.TrackID, b.Duration = uint64(creation), uint64(modification), trackID, uint64(duration)
	}

	for i := 0; i < 2; i++ {
		if _, err := stream.ReadBigEndianUint32(); err != nil { // reserved
			return err
		}
	}

	layer, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	altGroup, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	volume, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	if _, err := stream.ReadBigEndianUint16(); err != nil { // reserved
		return err
	}
	matrix, err := stream.ReadMatrix()
	if err != nil {
		return err
	}
	width, err := stream.ReadBigEndianFixedPoint(16, 16)
	if err != nil {
		return err
	}
	height, err := stream.ReadBigEndianFixedPoint(16, 16)
	if err != nil {
		return err
	}

	b.Layer = int16(layer)
	b.AlternateGroup = int16(altGroup)
	b.Volume = volume
	b.Matrix = matrix
	b.Width = width
	b.Height = height
	return nil
}

func (b *TrackHeaderBox) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props,
		Property{Name: "CreationTime", Value: strconv.FormatUint(b.CreationTime, 10)},
		Property{Name: "ModificationTime", Value: strconv.FormatUint(b.ModificationTime, 10)},
		Property{Name: "TrackID", Value: strconv.FormatUint(uint64(b.TrackID), 10)},
		Property{Name: "Duration", Value: strconv.FormatUint(b.Duration, 10)},
		Property{Name: "Matrix", Value: b.Matrix.String()},
	)
}
