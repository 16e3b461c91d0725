package isobmff

// File is the root of a parsed tree: a ContainerBox whose name is
// conventionally empty and whose children are the top-level boxes of the
// input (ftyp, moov, mdat, ...).
type File struct {
	ContainerBox
}

func newFile() *File {
	return &File{ContainerBox: *NewContainerBox(FourCC{})}
}
