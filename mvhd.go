package isobmff

import "strconv"

// MovieHeaderBox is the "mvhd" box: movie-wide timing and playback defaults.
// Its version-gated creation/modification/duration fields follow the same
// pattern as TrackHeaderBox (original_source/src/TKHD.cpp).
type MovieHeaderBox struct {
	FullBox
	CreationTime     uint64
	ModificationTime uint64
	Timescale        uint32
	Duration         uint64
	Rate             float64 // 16.16 fixed-point
	Volume           uint16  // 8.8 fixed-point
	Matrix           Matrix
	NextTrackID      uint32
}

func newMovieHeaderBox(name FourCC) *MovieHeaderBox {
	return &MovieHeaderBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *MovieHeaderBox) ReadData(parser *Parser, stream *BinaryStream) error {
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
		timescale, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		duration, err := stream.ReadBigEndianUint64()
		if err != nil {
			return err
		}
		b.CreationTime, b.ModificationTime, b.Timescale, b.Duration = creation, modification, timescale, duration
	} else {
		creation, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		modification, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		timescale, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		duration, err := stream.ReadBigEndianUint32()
		if err != nil {
			return err
		}
		b.CreationTime, b.ModificationTime, b.Timescale, b.Duration = uint64(creation), uint64(modification), timescale, uint64(duration)
	}

	rate, err := stream.ReadBigEndianFixedPoint(16, 16)
	if err != nil {
		return err
	}
	volume, err := stream.ReadBigEndianUint16()
	if err != nil {
		return err
	}
	var reserved [10]byte
	if err := stream.Read(reserved[:]); err != nil {
		return err
	}
	matrix, err := stream.ReadMatrix()
	if err != nil {
		return err
	}
	for i := 0; i < 6; i++ {
		if _, err := stream.ReadBigEndianUint32(); err != nil { // predefined
			return err
		}
	}
	nextTrackID, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}

	b.Rate = rate
	b.Volume = volume
	b.Matrix = matrix
	b.NextTrackID = nextTrackID
	return nil
}

func (b *MovieHeaderBox) Properties() []Property {
	props := b.FullBox.Properties()
	return append(props,
		Property{Name: "Timescale", Value: strconv.FormatUint(uint64(b.Timescale), 10)},
		Property{Name: "Duration", Value: strconv.FormatUint(b.Duration, 10)},
		Property{Name: "NextTrackID", Value: strconv.FormatUint(uint64(b.NextTrackID), 10)},
	)
}
