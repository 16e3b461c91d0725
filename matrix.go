package isobmff

import "fmt"

// Matrix is a 3x3 transformation matrix as used by TKHD/MVHD, serialized on
// the wire as nine big-endian int32 values in row order (a, b, u, c, d, v,
// tx, ty, w):
//
//	[ a  b  u ]
//	[ c  d  v ]
//	[ tx ty w ]
type Matrix struct {
	A, B, U  int32
	C, D, V  int32
	TX, TY, W int32
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%d %d %d; %d %d %d; %d %d %d]",
		m.A, m.B, m.U, m.C, m.D, m.V, m.TX, m.TY, m.W)
}
