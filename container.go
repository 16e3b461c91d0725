package isobmff

// Container is the capability of holding an ordered list of child boxes.
// Order is preserved; duplicates are permitted (multiple "trak" boxes are
// the norm). BoxByName returns the first match.
type Container interface {
	Boxes() []Box
	AddBox(b Box)
	BoxByName(name FourCC) Box
}

// boxList is the shared implementation backing every Container-capable box
// (ContainerBox, and any FullBox+Container hybrid such as META or IREF).
// It is embedded by value, never by pointer, so each container box owns
// its own child slice.
type boxList struct {
	boxes []Box
}

func (c *boxList) Boxes() []Box { return c.boxes }

func (c *boxList) AddBox(b Box) {
	if b != nil {
		c.boxes = append(c.boxes, b)
	}
}

func (c *boxList) BoxByName(name FourCC) Box {
	for _, b := range c.boxes {
		if b.Name() == name {
			return b
		}
	}
	return nil
}

// TypedBox narrows BoxByName to a specific decoded type, returning the
// first child named name whose concrete type is also T. This stands in
// for the C++ source's GetTypedBox<T> template method.
func TypedBox[T Box](c Container, name FourCC) (T, bool) {
	var zero T
	for _, b := range c.Boxes() {
		if b.Name() != name {
			continue
		}
		if t, ok := b.(T); ok {
			return t, true
		}
	}
	return zero, false
}

// AllTypedBoxes returns every child of c whose concrete type is T,
// regardless of name — useful for boxes like ItemPropertyContainerBox
// whose children are a heterogeneous mix of property types.
func AllTypedBoxes[T Box](c Container) []T {
	var out []T
	for _, b := range c.Boxes() {
		if t, ok := b.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
