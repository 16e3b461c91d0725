package isobmff_test

import (
	"encoding/binary"
	"testing"

	"github.com/mediabox/isobmff"
)

func TestParseEmptyFtyp(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x08, 'f', 't', 'y', 'p'}

	file, err := isobmff.NewParser().ParseBytes(data)
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}

	boxes := file.Boxes()
	if len(boxes) != 1 {
		t.Fatalf("got %d top-level boxes, want 1", len(boxes))
	}
	if boxes[0].Name().String() != "ftyp" {
		t.Fatalf("got box name %q, want ftyp", boxes[0].Name())
	}

	ftyp, ok := isobmff.TypedBox[*isobmff.FileTypeBox](file, isobmff.FourCC{'f', 't', 'y', 'p'})
	if !ok {
		t.Fatal("ftyp box did not decode as *FileTypeBox")
	}
	if len(ftyp.CompatibleBrands) != 0 {
		t.Fatalf("got %d compatible brands, want 0", len(ftyp.CompatibleBrands))
	}
}

func TestParseRejectsUnrecognizedRoot(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x08, 'X', 'X', 'X', 'X'}

	_, err := isobmff.NewParser().ParseBytes(data)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if got := isobmff.KindOf(err); got != isobmff.NotISOMediaFile {
		t.Fatalf("got error kind %v, want NotISOMediaFile", got)
	}
}

func TestParseTruncatedBoxFailsWithInsufficientData(t *testing.T) {
	// Declares a 100-byte box, but only the header plus 2 bytes follow.
	data := []byte{0x00, 0x00, 0x00, 0x64, 'f', 't', 'y', 'p', 0x00, 0x00}

	_, err := isobmff.NewParser().ParseBytes(data)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if got := isobmff.KindOf(err); got != isobmff.InsufficientData {
		t.Fatalf("got error kind %v, want InsufficientData", got)
	}
}

func TestMDATSkippedByDefault(t *testing.T) {
	mdatPayloadLen := 1 << 20 // 1 MiB
	data := buildFtypPlusMDAT(mdatPayloadLen)

	file, err := isobmff.NewParser().ParseBytes(data)
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}

	mdat, ok := isobmff.TypedBox[*isobmff.BaseBox](file, isobmff.FourCC{'m', 'd', 'a', 't'})
	if !ok {
		t.Fatal("mdat did not decode as *BaseBox (opaque skip)")
	}
	if mdat.Data != nil {
		t.Fatalf("got %d skipped mdat bytes loaded, want none", len(mdat.Data))
	}
}

func TestMDATLoadedWithDoNotSkipOption(t *testing.T) {
	mdatPayloadLen := 1 << 20
	data := buildFtypPlusMDAT(mdatPayloadLen)

	parser := isobmff.NewParser()
	parser.SetOptions(isobmff.DoNotSkipMDATData)

	file, err := parser.ParseStream(isobmff.NewBinaryDataStream(data))
	if err != nil {
		t.Fatalf("ParseStream: %v", err)
	}

	mdat, ok := isobmff.TypedBox[*isobmff.BaseBox](file, isobmff.FourCC{'m', 'd', 'a', 't'})
	if !ok {
		t.Fatal("mdat did not decode as *BaseBox")
	}
	if len(mdat.Data) != mdatPayloadLen {
		t.Fatalf("got %d loaded bytes, want %d", len(mdat.Data), mdatPayloadLen)
	}
}

// buildFtypPlusMDAT assembles a minimal ftyp box followed by an mdat box of
// payloadLen zero bytes. mdat has no registered decoder, so when
// DoNotSkipMDATData forces its bytes to be read it decodes as an opaque
// *BaseBox whose Data holds the payload.
func buildFtypPlusMDAT(payloadLen int) []byte {
	ftyp := boxBytes("ftyp", append([]byte("mif1\x00\x00\x00\x00"), []byte("heic")...))
	mdat := boxBytes("mdat", make([]byte, payloadLen))
	return append(ftyp, mdat...)
}

func boxBytes(fourCC string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload))
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(8+len(payload)))
	out = append(out, size[:]...)
	out = append(out, []byte(fourCC)...)
	return append(out, payload...)
}

func TestRegisterBoxOverridesDefaultDecoder(t *testing.T) {
	data := boxBytes("ftyp", append([]byte("mif1\x00\x00\x00\x00"), []byte("heic")...))
	data = append(data, boxBytes("mdat", []byte{1, 2, 3, 4})...)

	parser := isobmff.NewParser()
	if err := parser.RegisterBox(isobmff.FourCC{'m', 'd', 'a', 't'}, func(name isobmff.FourCC) isobmff.Box {
		return isobmff.NewContainerBox(name)
	}); err != nil {
		t.Fatalf("RegisterBox: %v", err)
	}

	// mdat's payload (1 2 3 4) is not a well-formed child box header, so
	// forcing it through ContainerBox's child loop should surface a read
	// error rather than silently succeed, proving the override took effect
	// over the built-in mdat-skip behaviour. DoNotSkipMDATData must be set,
	// since the skip check only consults the registered decoder after the
	// mdat-specific short-circuit is bypassed.
	parser.SetOptions(isobmff.DoNotSkipMDATData)
	_, err := parser.ParseBytes(data)
	if err == nil {
		t.Fatal("expected an error decoding malformed mdat-as-container payload, got nil")
	}
}
