package isobmff

import "strconv"

// FourCC is a 4-byte ASCII type tag identifying a box's decoder. It is
// treated as an opaque identifier and is never normalized — trailing
// spaces (as in "url " or "urn ") are significant.
type FourCC [4]byte

func (f FourCC) String() string { return string(f[:]) }

// fourCC builds a FourCC from a 4-character string literal used at
// registration sites. It panics on misuse (a non-4-byte literal), since
// every call site is a compile-time constant within this package; callers
// registering boxes from outside the package go through Parser.RegisterBox,
// which validates at runtime instead.
func fourCC(s string) FourCC {
	if len(s) != 4 {
		panic("isobmff: fourCC literal must be exactly 4 bytes: " + s)
	}
	return FourCC{s[0], s[1], s[2], s[3]}
}

// Property is a name/value pair used by Box.Properties for introspection
// (e.g. a pretty-printer walking the parsed tree).
type Property struct {
	Name  string
	Value string
}

// Box is every element of the parsed tree. Concrete box types embed
// BaseBox (or FullBox) for the default identity/no-op behavior and
// override ReadData and Properties as needed.
type Box interface {
	// Name returns the box's four-character type tag.
	Name() FourCC

	// ReadData decodes the box's payload from stream. parser is passed
	// through so that container-capable boxes can recurse via the
	// registry, and so that leaf decoders can consult Parser options
	// (e.g. DoNotSkipMDATData) or the info dictionary.
	ReadData(parser *Parser, stream *BinaryStream) error

	// Properties lists this box's fields as name/value pairs, for
	// introspection. The default (BaseBox) returns nil when no payload was
	// loaded, and otherwise a single "Size" property: an opaque box whose
	// content the parser preserves without interpreting.
	Properties() []Property
}

// BaseBox is the common identity every Box embeds: a fourCC name and the
// default opaque behavior for ReadData/Properties. A box constructed as a
// bare BaseBox (no embedding type) is what the registry falls back to for
// an unrecognized fourCC — an un-decoded leaf the parse continues past
// rather than erroring on.
type BaseBox struct {
	name FourCC
	// Data holds this box's raw payload when ReadData was actually invoked
	// with a loaded stream (i.e. the box was not skipped). A box whose
	// payload was skipped (mdat by policy, or an oversized largesize) is
	// returned without ReadData ever running, so Data stays nil for those.
	Data []byte
}

// NewBaseBox constructs an opaque box with the given name and no data. This
// is what the mdat/oversized-largesize skip paths in readContainerChild
// return directly, bypassing ReadData entirely.
func NewBaseBox(name FourCC) *BaseBox { return &BaseBox{name: name} }

func (b *BaseBox) Name() FourCC { return b.name }

// ReadData on a bare BaseBox reads no typed fields but retains the box's
// raw payload verbatim, so an unrecognized fourCC (or an mdat loaded via
// DoNotSkipMDATData) still exposes retrievable bytes per spec.md §4.6.
func (b *BaseBox) ReadData(_ *Parser, stream *BinaryStream) error {
	data, err := stream.ReadAllData()
	if err != nil {
		return err
	}
	b.Data = data
	return nil
}

func (b *BaseBox) Properties() []Property {
	if len(b.Data) == 0 {
		return nil
	}
	return []Property{{Name: "Size", Value: strconv.Itoa(len(b.Data))}}
}
