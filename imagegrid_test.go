package isobmff_test

import (
	"testing"

	"github.com/mediabox/isobmff"
)

func TestReadImageGridTwoByteFields(t *testing.T) {
	// flags low bit 0 -> field width (0+1)*2 = 2 bytes.
	data := []byte{
		0x00,       // version
		0x00,       // flags
		0x01,       // rows - 1
		0x02,       // columns - 1
		0x01, 0x00, // output_width  = 256
		0x00, 0x80, // output_height = 128
	}

	g, err := isobmff.ReadImageGrid(isobmff.NewBinaryDataStream(data))
	if err != nil {
		t.Fatalf("ReadImageGrid: %v", err)
	}
	if g.OutputWidth != 256 || g.OutputHeight != 128 {
		t.Fatalf("got width=%d height=%d, want 256/128", g.OutputWidth, g.OutputHeight)
	}
}

func TestReadImageGridFourByteFields(t *testing.T) {
	// flags low bit 1 -> field width (1+1)*2 = 4 bytes.
	data := []byte{
		0x00,                   // version
		0x01,                   // flags, bit 0 set
		0x00,                   // rows - 1
		0x00,                   // columns - 1
		0x00, 0x01, 0x00, 0x00, // output_width  = 65536
		0x00, 0x00, 0x02, 0x00, // output_height = 512
	}

	g, err := isobmff.ReadImageGrid(isobmff.NewBinaryDataStream(data))
	if err != nil {
		t.Fatalf("ReadImageGrid: %v", err)
	}
	if g.OutputWidth != 65536 || g.OutputHeight != 512 {
		t.Fatalf("got width=%d height=%d, want 65536/512", g.OutputWidth, g.OutputHeight)
	}
}
