package isobmff_test

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/mediabox/isobmff"
)

// box wraps payload in an 8-byte (size, fourCC) header.
func box(fourCC string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload))
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(8+len(payload)))
	out = append(out, size[:]...)
	out = append(out, []byte(fourCC)...)
	return append(out, payload...)
}

func fullBoxHeader(version uint8, flags uint32) []byte {
	return []byte{version, byte(flags >> 16), byte(flags >> 8), byte(flags)}
}

// buildHEICWithExif assembles a minimal ftyp+meta file whose sole item is an
// "Exif" item stored in an "idat" box, addressed via an "iloc" entry with
// construction method 1 (idat-relative). This mirrors the shape
// goheif.File.EXIF / heif.File.GetItemData expect: the item payload is a
// 4-byte exif_tiff_header_offset field followed directly by a TIFF blob.
func buildHEICWithExif(tiff []byte) []byte {
	ftyp := box("ftyp", append([]byte("mif1\x00\x00\x00\x00"), []byte("heic")...))

	hdlr := box("hdlr", concat(
		fullBoxHeader(0, 0),
		make([]byte, 4),     // pre_defined
		[]byte("pict"),      // handler_type
		make([]byte, 12),    // reserved
		[]byte{0},           // NUL-terminated name, empty
	))

	infePayload := concat(
		fullBoxHeader(2, 0),
		u16(1), // item_id
		u16(0), // protection_index
		[]byte("Exif"),
		[]byte{0}, // name
	)
	infe := box("infe", infePayload)

	iinf := box("iinf", concat(
		fullBoxHeader(0, 0),
		u16(1), // entry_count
		infe,
	))

	idatPayload := concat(make([]byte, 4), tiff) // exif_tiff_header_offset + TIFF
	idat := box("idat", idatPayload)

	ilocEntry := concat(
		u16(1),     // item_ID
		u16(1),     // construction_method = 1 (idat-relative)
		u16(0),     // data_reference_index
		u16(1),     // extent_count
		u32(0),     // extent offset (within idat payload)
		u32(uint32(len(idatPayload))), // extent length
	)
	iloc := box("iloc", concat(
		fullBoxHeader(1, 0),
		[]byte{0x44, 0x00}, // offsetSize=4, lengthSize=4; baseOffsetSize=0, indexSize=0
		u16(1),              // item_count
		ilocEntry,
	))

	meta := box("meta", concat(
		fullBoxHeader(0, 0),
		hdlr, iinf, iloc, idat,
	))

	return concat(ftyp, meta)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func u16(v uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return b[:]
}

func u32(v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b[:]
}

// minimalTIFF is a syntactically valid, empty little-endian TIFF: no IFD
// entries, no next IFD. Enough for exif.Decode to succeed with no tags.
func minimalTIFF() []byte {
	return []byte{
		'I', 'I', 0x2A, 0x00, // byte order + magic
		0x08, 0x00, 0x00, 0x00, // offset of first IFD
		0x00, 0x00, // IFD entry count
		0x00, 0x00, 0x00, 0x00, // next IFD offset
	}
}

// Example walks a parsed meta item graph (hdlr/iinf/infe/iloc/idat) to
// locate an "Exif" item's raw bytes and hand them to goexif, mirroring the
// lookup goheif.File.EXIF performed one layer up in the teacher.
func Example() {
	data := buildHEICWithExif(minimalTIFF())

	parser := isobmff.NewParser()
	file, err := parser.ParseBytes(data)
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	meta, ok := isobmff.TypedBox[*isobmff.MetaBox](file, isobmff.FourCC{'m', 'e', 't', 'a'})
	if !ok {
		fmt.Println("no meta box")
		return
	}

	iinf, ok := isobmff.TypedBox[*isobmff.ItemInfoBox](meta, isobmff.FourCC{'i', 'i', 'n', 'f'})
	if !ok {
		fmt.Println("no iinf box")
		return
	}

	var exifItemID uint32
	for _, entry := range iinf.Entries() {
		if entry.ItemType.String() == "Exif" {
			exifItemID = entry.ItemID
			break
		}
	}
	if exifItemID == 0 {
		fmt.Println("no Exif item")
		return
	}

	iloc, ok := isobmff.TypedBox[*isobmff.ItemLocationBox](meta, isobmff.FourCC{'i', 'l', 'o', 'c'})
	if !ok {
		fmt.Println("no iloc box")
		return
	}

	idat, ok := isobmff.TypedBox[*isobmff.ItemDataBox](meta, isobmff.FourCC{'i', 'd', 'a', 't'})
	if !ok {
		fmt.Println("no idat box")
		return
	}

	var raw []byte
	for _, item := range iloc.Items {
		if uint32(item.ItemID) != exifItemID || item.ConstructionMethod != 1 {
			continue
		}
		ext := item.Extents[0]
		raw = idat.Data[ext.Offset : ext.Offset+ext.Length]
	}
	if raw == nil {
		fmt.Println("no Exif extent")
		return
	}

	// The first 4 bytes are the exif_tiff_header_offset field; the TIFF
	// blob follows, per the teacher's File.EXIF.
	x, err := exif.Decode(bytes.NewReader(raw[4:]))
	if err != nil {
		fmt.Println("exif decode error:", err)
		return
	}

	tags, _ := x.JpegThumbnail()
	fmt.Println("decoded exif, thumbnail present:", tags != nil)
	// Output: decoded exif, thumbnail present: false
}
