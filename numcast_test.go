package isobmff

import "testing"

func TestNumericCastFitsWithinRange(t *testing.T) {
	got, err := numericCast[int32](int64(42))
	if err != nil {
		t.Fatalf("numericCast: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestNumericCastOverflowFails(t *testing.T) {
	_, err := numericCast[int32](int64(1) << 40)
	if err == nil {
		t.Fatal("expected an overflow error, got nil")
	}
	if KindOf(err) != BadNumericCast {
		t.Fatalf("got error kind %v, want BadNumericCast", KindOf(err))
	}
}

func TestNumericCastSignChangeFails(t *testing.T) {
	// math.MaxUint64 reinterpreted as int64 aliases to -1: same bit pattern,
	// opposite sign. The round-trip check alone wouldn't catch this since
	// int64(-1) cast back to uint64 reproduces the original value; the
	// explicit sign comparison is what rejects it.
	var maxUint64 uint64 = 1<<64 - 1
	_, err := numericCast[int64](maxUint64)
	if err == nil {
		t.Fatal("expected a sign-change error, got nil")
	}
	if KindOf(err) != BadNumericCast {
		t.Fatalf("got error kind %v, want BadNumericCast", KindOf(err))
	}
}

func TestNumericCastNegativeToUnsignedFails(t *testing.T) {
	_, err := numericCast[uint32](int32(-1))
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if KindOf(err) != BadNumericCast {
		t.Fatalf("got error kind %v, want BadNumericCast", KindOf(err))
	}
}
