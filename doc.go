// Package isobmff reads ISO Base Media File Format (ISO/IEC 14496-12) boxes,
// as used by MP4, MOV, HEIF and CMAF.
//
// It discovers the tree of typed binary containers ("boxes") in a byte
// stream, dispatches each box to a type-specific decoder via a registry
// keyed by four-character code, and returns an introspectable tree rooted
// at a File. The package is read-only: it locates media sample data but
// never decodes it, and it never writes or mutates its input.
//
// This package makes no API compatibility promises.
package isobmff
