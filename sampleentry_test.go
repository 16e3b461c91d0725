package isobmff_test

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/mediabox/isobmff"
)

// avc3SampleEntryPayload is the 174-byte AVC3 VisualSampleEntry payload (the
// box's content, excluding its own 8-byte size+fourCC header) taken from a
// real encoded .mp4 video track: a fixed visual-geometry header followed by
// an avcC configuration record and a colr property.
var avc3SampleEntryPayload = []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x06, 0xc0, 0x09, 0x00, 0x00, 0x48, 0x00, 0x00,
	0x00, 0x48, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x01, 0x15, 0x4c, 0x61, 0x76, 0x63, 0x36,
	0x31, 0x2e, 0x31, 0x39, 0x2e, 0x31, 0x30, 0x31,
	0x20, 0x6c, 0x69, 0x62, 0x78, 0x32, 0x36, 0x34,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x18, 0xff, 0xff, 0x00, 0x00,
	0x00, 0x39, 0x61, 0x76, 0x63, 0x43, 0x01, 0x64,
	0x00, 0x34, 0xff, 0xe1, 0x00, 0x1c, 0x67, 0x64,
	0x00, 0x34, 0xac, 0xd9, 0x40, 0x6c, 0x01, 0x21,
	0xa6, 0xa1, 0x22, 0x41, 0x28, 0x00, 0x00, 0x03,
	0x00, 0x08, 0x00, 0x00, 0x07, 0x80, 0x78, 0xc1,
	0x8c, 0xb0, 0x01, 0x00, 0x06, 0x68, 0xeb, 0xe3,
	0xcb, 0x22, 0xc0, 0xfd, 0xf8, 0xf8, 0x00, 0x00,
	0x00, 0x00, 0x13, 0x63, 0x6f, 0x6c, 0x72, 0x6e,
	0x63, 0x6c, 0x78, 0x00, 0x09, 0x00, 0x12, 0x00,
	0x09, 0x00, 0x00, 0x00, 0x00, 0x14, 0x62, 0x74,
	0x72, 0x74, 0x00, 0x00, 0x00, 0x00, 0x00, 0x9a,
	0x9e, 0xc2, 0x00, 0x00, 0x00, 0x00,
}

func TestDecodeAVC3SampleEntry(t *testing.T) {
	ftyp := boxBytes("ftyp", append([]byte("mp42\x00\x00\x00\x00"), []byte("isom")...))

	var stsdContent []byte
	stsdContent = append(stsdContent, 0x00, 0x00, 0x00, 0x00) // version/flags
	var entryCount [4]byte
	binary.BigEndian.PutUint32(entryCount[:], 1)
	stsdContent = append(stsdContent, entryCount[:]...)
	stsdContent = append(stsdContent, boxBytes("avc3", avc3SampleEntryPayload)...)
	stsd := boxBytes("stsd", stsdContent)

	file, err := isobmff.NewParser().ParseBytes(append(ftyp, stsd...))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}

	stsdBox, ok := isobmff.TypedBox[*isobmff.SampleDescriptionBox](file, isobmff.FourCC{'s', 't', 's', 'd'})
	if !ok {
		t.Fatal("stsd did not decode as *SampleDescriptionBox")
	}

	entry, ok := isobmff.TypedBox[*isobmff.VisualSampleEntry](stsdBox, isobmff.FourCC{'a', 'v', 'c', '3'})
	if !ok {
		t.Fatal("avc3 did not decode as *VisualSampleEntry")
	}

	if entry.Width != 1728 {
		t.Fatalf("got width %d, want 1728", entry.Width)
	}
	if entry.Height != 2304 {
		t.Fatalf("got height %d, want 2304", entry.Height)
	}
	if entry.Depth != 24 {
		t.Fatalf("got depth %d, want 24", entry.Depth)
	}
	if entry.FrameCount != 1 {
		t.Fatalf("got frame count %d, want 1", entry.FrameCount)
	}
	if entry.HorizResolution != 72.0 || entry.VertResolution != 72.0 {
		t.Fatalf("got resolution %v/%v, want 72/72", entry.HorizResolution, entry.VertResolution)
	}
	if !strings.HasPrefix(entry.CompressorName, "\x15Lavc61.19.101 libx264") {
		t.Fatalf("got compressor name %q, want prefix %q", entry.CompressorName, "\x15Lavc61.19.101 libx264")
	}

	avcc, ok := isobmff.TypedBox[*isobmff.AVCConfigurationBox](entry, isobmff.FourCC{'a', 'v', 'c', 'C'})
	if !ok {
		t.Fatal("avcC child did not decode as *AVCConfigurationBox")
	}
	if len(avcc.SequenceParameterSets) != 1 || len(avcc.PictureParameterSets) != 1 {
		t.Fatalf("got %d SPS / %d PPS, want 1/1", len(avcc.SequenceParameterSets), len(avcc.PictureParameterSets))
	}
}
