package isobmff

import (
	"fmt"
	"log"
	"math"
)

// ContainerBox is the generic container decoder: given a stream positioned
// at the start of this box's payload, it runs a loop reading box headers
// and recursing into the registry until no bytes remain. Any fourCC
// without an explicit decoder falls back to an opaque BaseBox, so the
// parse continues rather than erroring on unknown content.
type ContainerBox struct {
	BaseBox
	boxList
}

// NewContainerBox constructs a ContainerBox with the given name. This is
// what Parser.RegisterContainerBox installs as the constructor for a
// fourCC that has no bespoke decoder.
func NewContainerBox(name FourCC) *ContainerBox {
	return &ContainerBox{BaseBox: BaseBox{name: name}}
}

func (c *ContainerBox) Properties() []Property { return nil }

// ReadData implements the box-tree recursive descent described in
// SPEC_FULL.md §4.3 / spec.md §4.5, ported from
// original_source/src/ContainerBox.cpp.
func (c *ContainerBox) ReadData(parser *Parser, stream *BinaryStream) error {
	return readChildBoxes(parser, stream, c)
}

// readChildBoxes runs the recursive-descent child loop against any
// Container, not just a bare ContainerBox: FullBox+Container hybrids such
// as MetaBox and ItemReferenceBox share this same loop after consuming
// their own version/flags header.
func readChildBoxes(parser *Parser, stream *BinaryStream, dst Container) error {
	for {
		hasMore, err := stream.HasBytesAvailable()
		if err != nil {
			return err
		}
		if !hasMore {
			break
		}

		size64, name, headerOverhead, err := readBoxHeader(stream)
		if err != nil {
			return err
		}
		if size64 == 0 && name == (FourCC{}) {
			// readBoxHeader's clean end-of-stream sentinel: a zero-size
			// header was the last thing in the stream.
			break
		}

		payloadLen := size64 - uint64(headerOverhead)

		child, err := readContainerChild(parser, stream, name, payloadLen, size64 > math.MaxInt64)
		if err != nil {
			log.Printf("isobmff: error reading box %q: %v", name, err)
			return fmt.Errorf("box %q: %w", name, err)
		}

		dst.AddBox(child)
	}

	return nil
}

// readBoxHeader reads the 8- or 16-byte box header (size, fourCC, and
// optional largesize) starting at the stream's current position, per the
// wire format in spec.md §6. It returns the effective total box size
// (including its own header) and the header's overhead in bytes (8 or 16).
//
// A size of 0 is only valid as a clean end-of-stream sentinel: if bytes
// remain after reading a zero size, this returns InvalidBoxData rather
// than looping forever (see SPEC_FULL.md Open Question #2).
func readBoxHeader(stream *BinaryStream) (total uint64, name FourCC, headerOverhead int, err error) {
	size, err := stream.ReadBigEndianUint32()
	if err != nil {
		return 0, FourCC{}, 0, err
	}

	if size == 0 {
		hasMore, availErr := stream.HasBytesAvailable()
		if availErr != nil {
			return 0, FourCC{}, 0, availErr
		}
		if !hasMore {
			return 0, FourCC{}, 0, nil
		}
		return 0, FourCC{}, 0, newError(InvalidBoxData, "zero-size box header with bytes remaining")
	}

	name, err = stream.ReadFourCC()
	if err != nil {
		return 0, FourCC{}, 0, err
	}

	if size == 1 {
		large, err := stream.ReadBigEndianUint64()
		if err != nil {
			return 0, FourCC{}, 0, err
		}
		return large, name, 16, nil
	}

	return uint64(size), name, 8, nil
}

// readContainerChild reads payloadLen bytes of a child box's payload (or
// skips them for mdat / oversized largesize), dispatches to the child's
// registered decoder, and returns the resulting Box.
func readContainerChild(parser *Parser, stream *BinaryStream, name FourCC, payloadLen uint64, oversizedLargesize bool) (Box, error) {
	isMDAT := name == mdatName
	skipData := oversizedLargesize || (isMDAT && !parser.HasOption(DoNotSkipMDATData))

	if skipData {
		off, err := numericCast[int64](payloadLen)
		if err != nil {
			return nil, err
		}
		if err := stream.Seek(off, SeekCurrent); err != nil {
			return nil, err
		}
		// Skipped content (mdat by policy, or any box whose declared
		// largesize exceeds the host's addressable range) still shows up
		// in the tree as an opaque box, just without its bytes loaded.
		return NewBaseBox(name), nil
	}

	size, err := numericCast[int](payloadLen)
	if err != nil {
		return nil, err
	}
	payload := make([]byte, size)
	if err := stream.Read(payload); err != nil {
		return nil, err
	}

	box := parser.CreateBox(name)
	childStream := NewBinaryDataStream(payload)
	if err := box.ReadData(parser, childStream); err != nil {
		return nil, err
	}
	return box, nil
}

var mdatName = fourCC("mdat")
