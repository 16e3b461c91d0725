package isobmff

import "strconv"

// ImageGrid is not a registered box: it is the derived-image payload format
// found inside an item whose "infe" type is "grid" (the bytes an "iloc"
// entry points to, read directly rather than through the registry). Ported
// field-for-field from original_source/src/ImageGrid.cpp, including its
// ((flags&1)+1)*2 field-width selector: that formula only ever yields 2 or
// 4, so the 1- and 8-byte branches below are unreachable in practice, kept
// present rather than stripped since the source keeps them too.
type ImageGrid struct {
	Version      uint8
	Flags        uint8
	Rows         uint8
	Columns      uint8
	OutputWidth  uint64
	OutputHeight uint64
}

// ReadImageGrid parses stream as an ImageGrid payload.
func ReadImageGrid(stream *BinaryStream) (*ImageGrid, error) {
	g := &ImageGrid{}

	version, err := stream.ReadUint8()
	if err != nil {
		return nil, err
	}
	flags, err := stream.ReadUint8()
	if err != nil {
		return nil, err
	}
	rows, err := stream.ReadUint8()
	if err != nil {
		return nil, err
	}
	columns, err := stream.ReadUint8()
	if err != nil {
		return nil, err
	}
	g.Version, g.Flags, g.Rows, g.Columns = version, flags, rows, columns

	width := uint8((flags&1)+1) * 2
	switch width {
	case 1:
		w, err := stream.ReadUint8()
		if err != nil {
			return nil, err
		}
		h, err := stream.ReadUint8()
		if err != nil {
			return nil, err
		}
		g.OutputWidth, g.OutputHeight = uint64(w), uint64(h)
	case 2:
		w, err := stream.ReadBigEndianUint16()
		if err != nil {
			return nil, err
		}
		h, err := stream.ReadBigEndianUint16()
		if err != nil {
			return nil, err
		}
		g.OutputWidth, g.OutputHeight = uint64(w), uint64(h)
	case 4:
		w, err := stream.ReadBigEndianUint32()
		if err != nil {
			return nil, err
		}
		h, err := stream.ReadBigEndianUint32()
		if err != nil {
			return nil, err
		}
		g.OutputWidth, g.OutputHeight = uint64(w), uint64(h)
	case 8:
		w, err := stream.ReadBigEndianUint64()
		if err != nil {
			return nil, err
		}
		h, err := stream.ReadBigEndianUint64()
		if err != nil {
			return nil, err
		}
		g.OutputWidth, g.OutputHeight = w, h
	}

	return g, nil
}

func (g *ImageGrid) Properties() []Property {
	return []Property{
		{Name: "Rows", Value: strconv.Itoa(int(g.Rows))},
		{Name: "Columns", Value: strconv.Itoa(int(g.Columns))},
		{Name: "OutputWidth", Value: strconv.FormatUint(g.OutputWidth, 10)},
		{Name: "OutputHeight", Value: strconv.FormatUint(g.OutputHeight, 10)},
	}
}
