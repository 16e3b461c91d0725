package isobmff

// Option is a bitmask of parser tunables, set with Parser.SetOptions.
type Option uint32

const (
	// DoNotSkipMDATData disables the default policy of skipping mdat
	// payloads without reading them into memory.
	DoNotSkipMDATData Option = 1 << iota
)

// StringType records a preference for how string-valued fields with an
// ambiguous encoding (no explicit length prefix) are read. No decoder in
// this package consults it: such fields are always read NUL-terminated.
type StringType int

const (
	// NULLTerminated reads up to and consumes a 0x00 terminator.
	NULLTerminated StringType = iota
	// Pascal reads a one-byte length prefix followed by that many bytes.
	Pascal
)

// rootFourCCs lists the fourCCs Parser.checkRoot accepts at the start of
// input, per spec.md §4.6 step 2.
var rootFourCCs = map[FourCC]bool{
	fourCC("ftyp"): true,
	fourCC("sinf"): true,
	fourCC("wide"): true,
	fourCC("free"): true,
	fourCC("skip"): true,
	fourCC("mdat"): true,
	fourCC("moov"): true,
	fourCC("pnot"): true,
}

// Parser owns the box-type registry and the tunable options that govern a
// parse: which boxes skip their payload, how ambiguous strings are read,
// and a small info dictionary decoders can stash auxiliary values in.
type Parser struct {
	registry   *registry
	options    Option
	stringType StringType
	info       map[string]any
}

// NewParser constructs a Parser pre-populated with the default box
// registrations (see registerDefaultBoxes).
func NewParser() *Parser {
	p := &Parser{
		registry: newRegistry(),
		info:     make(map[string]any),
	}
	registerDefaultBoxes(p.registry)
	return p
}

// RegisterBox installs an explicit decoder constructor for name.
func (p *Parser) RegisterBox(name FourCC, ctor func(FourCC) Box) error {
	if err := validateFourCC(name); err != nil {
		return err
	}
	p.registry.register(name, ctor)
	return nil
}

// RegisterContainerBox installs a generic ContainerBox constructor for name.
func (p *Parser) RegisterContainerBox(name FourCC) error {
	if err := validateFourCC(name); err != nil {
		return err
	}
	p.registry.register(name, func(n FourCC) Box { return NewContainerBox(n) })
	return nil
}

func validateFourCC(name FourCC) error {
	for _, b := range name {
		if b == 0 {
			return newError(InvalidBoxData, "fourCC must be exactly 4 non-NUL bytes")
		}
	}
	return nil
}

// CreateBox returns a fresh Box for name from the registry, falling back to
// an opaque BaseBox when no entry matches.
func (p *Parser) CreateBox(name FourCC) Box {
	return p.registry.create(name)
}

// SetOptions replaces the parser's option bitmask.
func (p *Parser) SetOptions(opts Option) { p.options = opts }

// HasOption reports whether opt is set in the parser's option bitmask.
func (p *Parser) HasOption(opt Option) bool { return p.options&opt != 0 }

// SetStringType records the preferred encoding for ambiguous string fields
// (see StringType).
func (p *Parser) SetStringType(t StringType) { p.stringType = t }

// GetStringType reports the parser's current string-reading preference.
func (p *Parser) GetStringType() StringType { return p.stringType }

// SetInfo stashes an auxiliary value under key, for decoders (e.g.
// ItemReferenceBox handing its version to its SingleItemTypeReferenceBox
// children) that need to pass state sideways outside the Box tree.
func (p *Parser) SetInfo(key string, value any) { p.info[key] = value }

// GetInfo retrieves a value previously stored with SetInfo.
func (p *Parser) GetInfo(key string) (any, bool) {
	v, ok := p.info[key]
	return v, ok
}

// Parse opens path and parses it as an ISO-BMFF file.
func (p *Parser) Parse(path string) (*File, error) {
	stream, err := NewBinaryFileStream(path)
	if err != nil {
		return nil, err
	}
	return p.ParseStream(stream)
}

// ParseBytes parses data as an ISO-BMFF file held entirely in memory.
func (p *Parser) ParseBytes(data []byte) (*File, error) {
	return p.ParseStream(NewBinaryDataStream(data))
}

// ParseStream parses an already-open BinaryStream, which must be positioned
// at the very start of the input.
func (p *Parser) ParseStream(stream *BinaryStream) (*File, error) {
	if err := p.checkRoot(stream); err != nil {
		return nil, err
	}

	file := newFile()
	if err := file.ReadData(p, stream); err != nil {
		return nil, err
	}
	return file, nil
}

// checkRoot peeks the fourCC of the first box (at absolute offset 4, since
// byte 0 starts that box's size field) and rejects input whose first box
// isn't one of the handful of fourCCs that legitimately open an ISO-BMFF
// file, per spec.md §4.6.
func (p *Parser) checkRoot(stream *BinaryStream) error {
	var buf [4]byte
	if err := stream.Get(buf[:], 4); err != nil {
		return wrapError(NotISOMediaFile, err, "reading root fourCC")
	}

	name := FourCC(buf)
	if !rootFourCCs[name] {
		return newError(NotISOMediaFile, "unrecognized root box type %q", name)
	}
	return nil
}
