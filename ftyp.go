package isobmff

// FileTypeBox is the "ftyp"/"styp" box: a major brand, a minor version, and
// a list of compatible brands running to the end of the payload. An empty
// payload is accepted and leaves every field at its zero value.
type FileTypeBox struct {
	BaseBox
	MajorBrand      FourCC
	MinorVersion    uint32
	CompatibleBrands []FourCC
}

func newFileTypeBox(name FourCC) *FileTypeBox {
	return &FileTypeBox{BaseBox: BaseBox{name: name}}
}

func (b *FileTypeBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if hasAny, err := stream.HasBytesAvailable(); err != nil {
		return err
	} else if !hasAny {
		return nil
	}
	major, err := stream.ReadFourCC()
	if err != nil {
		return err
	}
	minor, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}
	b.MajorBrand = major
	b.MinorVersion = minor

	b.CompatibleBrands = nil
	for {
		hasMore, err := stream.HasBytesAvailable()
		if err != nil {
			return err
		}
		if !hasMore {
			break
		}
		brand, err := stream.ReadFourCC()
		if err != nil {
			return err
		}
		b.CompatibleBrands = append(b.CompatibleBrands, brand)
	}
	return nil
}

func (b *FileTypeBox) Properties() []Property {
	props := []Property{
		{Name: "MajorBrand", Value: b.MajorBrand.String()},
	}
	for _, brand := range b.CompatibleBrands {
		props = append(props, Property{Name: "CompatibleBrand", Value: brand.String()})
	}
	return props
}
