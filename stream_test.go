package isobmff_test

import (
	"testing"

	"github.com/mediabox/isobmff"
)

func TestEndianSymmetryUint32(t *testing.T) {
	be := []byte{0x01, 0x02, 0x03, 0x04}
	le := []byte{0x04, 0x03, 0x02, 0x01}

	gotBE, err := isobmff.NewBinaryDataStream(be).ReadBigEndianUint32()
	if err != nil {
		t.Fatalf("ReadBigEndianUint32: %v", err)
	}
	gotLE, err := isobmff.NewBinaryDataStream(le).ReadLittleEndianUint32()
	if err != nil {
		t.Fatalf("ReadLittleEndianUint32: %v", err)
	}
	if gotBE != gotLE {
		t.Fatalf("big-endian read %d != little-endian read %d on reversed bytes", gotBE, gotLE)
	}
}

func TestAvailableBytesRestoresPosition(t *testing.T) {
	stream := isobmff.NewBinaryDataStream([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	if _, err := stream.ReadBigEndianUint16(); err != nil {
		t.Fatalf("ReadBigEndianUint16: %v", err)
	}
	before, err := stream.Tell()
	if err != nil {
		t.Fatalf("Tell: %v", err)
	}

	avail, err := stream.AvailableBytes()
	if err != nil {
		t.Fatalf("AvailableBytes: %v", err)
	}
	if avail != 6 {
		t.Fatalf("got %d available bytes, want 6", avail)
	}

	after, err := stream.Tell()
	if err != nil {
		t.Fatalf("Tell: %v", err)
	}
	if before != after {
		t.Fatalf("AvailableBytes moved position from %d to %d", before, after)
	}
}

func TestGetPeeksWithoutMovingPosition(t *testing.T) {
	stream := isobmff.NewBinaryDataStream([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	if _, err := stream.ReadBigEndianUint16(); err != nil {
		t.Fatalf("ReadBigEndianUint16: %v", err)
	}
	before, err := stream.Tell()
	if err != nil {
		t.Fatalf("Tell: %v", err)
	}

	var buf [4]byte
	if err := stream.Get(buf[:], 4); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if buf != [4]byte{5, 6, 7, 8} {
		t.Fatalf("got %v, want [5 6 7 8]", buf)
	}

	after, err := stream.Tell()
	if err != nil {
		t.Fatalf("Tell: %v", err)
	}
	if before != after {
		t.Fatalf("Get moved position from %d to %d", before, after)
	}
}

func TestFixedPoint16_16Boundaries(t *testing.T) {
	cases := []struct {
		word uint32
		want float64
	}{
		{0x00010000, 1.0},
		{0x00018000, 1.5},
		{0xFFFF0000, 65535.0},
	}
	for _, c := range cases {
		buf := []byte{byte(c.word >> 24), byte(c.word >> 16), byte(c.word >> 8), byte(c.word)}
		got, err := isobmff.NewBinaryDataStream(buf).ReadBigEndianFixedPoint(16, 16)
		if err != nil {
			t.Fatalf("ReadBigEndianFixedPoint(0x%08X): %v", c.word, err)
		}
		if got != c.want {
			t.Fatalf("ReadBigEndianFixedPoint(0x%08X) = %v, want %v", c.word, got, c.want)
		}
	}
}

func TestReadNULLTerminatedStringMissingTerminatorFails(t *testing.T) {
	stream := isobmff.NewBinaryDataStream([]byte("no terminator here"))

	_, err := stream.ReadNULLTerminatedString()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if got := isobmff.KindOf(err); got != isobmff.InsufficientData {
		t.Fatalf("got error kind %v, want InsufficientData", got)
	}
}

func TestReadMatrixRowOrder(t *testing.T) {
	// Nine sequential big-endian int32 values: a b u / c d v / tx ty w.
	var data []byte
	for i := int32(1); i <= 9; i++ {
		data = append(data, byte(i>>24), byte(i>>16), byte(i>>8), byte(i))
	}

	m, err := isobmff.NewBinaryDataStream(data).ReadMatrix()
	if err != nil {
		t.Fatalf("ReadMatrix: %v", err)
	}
	want := isobmff.Matrix{A: 1, B: 2, U: 3, C: 4, D: 5, V: 6, TX: 7, TY: 8, W: 9}
	if m != want {
		t.Fatalf("got %v, want %v", m, want)
	}
}

func TestOversizedLargesizeSkipsRegardlessOfOption(t *testing.T) {
	// size == 1 (largesize follows), then a largesize so large it cannot
	// possibly be addressable on this host, followed by no further bytes.
	data := []byte{
		0x00, 0x00, 0x00, 0x01, 'm', 'd', 'a', 't',
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}
	ftyp := []byte{0x00, 0x00, 0x00, 0x08, 'f', 't', 'y', 'p'}
	input := append(append([]byte{}, ftyp...), data...)

	parser := isobmff.NewParser()
	parser.SetOptions(isobmff.DoNotSkipMDATData)

	_, err := parser.ParseBytes(input)
	if err == nil {
		t.Fatal("expected a bad-numeric-cast error skipping an unaddressable largesize, got nil")
	}
}
