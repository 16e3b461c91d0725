package isobmff

// DataReferenceBox is the "dref" box: an entry count followed by that many
// data-entry child boxes (url /urn  variants), read via the same
// recursive-descent loop as any other container.
type DataReferenceBox struct {
	FullBox
	boxList
	EntryCount uint32
}

func newDataReferenceBox(name FourCC) *DataReferenceBox {
	return &DataReferenceBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *DataReferenceBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}
	count, err := stream.ReadBigEndianUint32()
	if err != nil {
		return err
	}
	b.EntryCount = count
	return readChildBoxes(parser, stream, &b.boxList)
}

func (b *DataReferenceBox) Properties() []Property { return b.FullBox.Properties() }

// DataEntryURLBox is the "url " data-entry box: a FullBox whose flags bit 0
// signals the referenced media is in the same file, in which case there is
// no location string to read.
type DataEntryURLBox struct {
	FullBox
	Location string
}

func newDataEntryURLBox(name FourCC) *DataEntryURLBox {
	return &DataEntryURLBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *DataEntryURLBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}
	if b.Flags&1 != 0 {
		return nil
	}
	location, err := stream.ReadNULLTerminatedString()
	if err != nil {
		return err
	}
	b.Location = location
	return nil
}

func (b *DataEntryURLBox) Properties() []Property {
	return append(b.FullBox.Properties(), Property{Name: "Location", Value: b.Location})
}

// DataEntryURNBox is the "urn " data-entry box: a name followed by a
// location, both NUL-terminated.
type DataEntryURNBox struct {
	FullBox
	EntryName string
	Location  string
}

func newDataEntryURNBox(name FourCC) *DataEntryURNBox {
	return &DataEntryURNBox{FullBox: FullBox{BaseBox: BaseBox{name: name}}}
}

func (b *DataEntryURNBox) ReadData(parser *Parser, stream *BinaryStream) error {
	if err := b.FullBox.ReadData(parser, stream); err != nil {
		return err
	}
	if b.Flags&1 != 0 {
		return nil
	}
	name, err := stream.ReadNULLTerminatedString()
	if err != nil {
		return err
	}
	location, err := stream.ReadNULLTerminatedString()
	if err != nil {
		return err
	}
	b.EntryName = name
	b.Location = location
	return nil
}

func (b *DataEntryURNBox) Properties() []Property {
	return append(b.FullBox.Properties(),
		Property{Name: "Name", Value: b.EntryName},
		Property{Name: "Location", Value: b.Location},
	)
}
