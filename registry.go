package isobmff

// boxConstructor builds a fresh, empty Box instance for a given fourCC. The
// registry stores one of these per registered type; ReadData is invoked
// separately once the box has been constructed.
type boxConstructor func(name FourCC) Box

// registry maps fourCC type tags to constructors. A fourCC with no
// registered constructor falls back to an opaque BaseBox (see
// Parser.CreateBox), so an unrecognized or vendor-specific box never aborts
// the parse.
type registry struct {
	constructors map[FourCC]boxConstructor
}

func newRegistry() *registry {
	return &registry{constructors: make(map[FourCC]boxConstructor)}
}

// register installs constructor for name, overwriting any existing entry.
func (r *registry) register(name FourCC, ctor boxConstructor) {
	r.constructors[name] = ctor
}

func (r *registry) create(name FourCC) Box {
	if ctor, ok := r.constructors[name]; ok {
		return ctor(name)
	}
	return NewBaseBox(name)
}

// registerDefaultBoxes installs the constructors for every box type this
// package understands, mirroring original_source/src/Parser.cpp's
// RegisterDefaultBoxes(). Plain containers (boxes with no fields of their
// own, just a child list) are registered with NewContainerBox directly;
// everything else gets its own constructor.
func registerDefaultBoxes(r *registry) {
	containers := []string{
		"moov", "trak", "edts", "mdia", "minf", "stbl", "mvex",
		"moof", "traf", "mfra", "meco", "mere", "dinf", "ipro",
		"sinf", "iprp", "fiin", "paen", "strk", "tapt", "schi",
	}
	for _, name := range containers {
		n := fourCC(name)
		r.register(n, func(name FourCC) Box { return NewContainerBox(name) })
	}

	r.register(fourCC("ftyp"), func(name FourCC) Box { return newFileTypeBox(name) })
	r.register(fourCC("styp"), func(name FourCC) Box { return newFileTypeBox(name) })
	r.register(fourCC("mvhd"), func(name FourCC) Box { return newMovieHeaderBox(name) })
	r.register(fourCC("tkhd"), func(name FourCC) Box { return newTrackHeaderBox(name) })
	r.register(fourCC("mdhd"), func(name FourCC) Box { return newMediaHeaderBox(name) })
	r.register(fourCC("hdlr"), func(name FourCC) Box { return newHandlerBox(name) })
	r.register(fourCC("meta"), func(name FourCC) Box { return newMetaBox(name) })
	r.register(fourCC("dref"), func(name FourCC) Box { return newDataReferenceBox(name) })
	r.register(fourCC("url "), func(name FourCC) Box { return newDataEntryURLBox(name) })
	r.register(fourCC("urn "), func(name FourCC) Box { return newDataEntryURNBox(name) })
	r.register(fourCC("iloc"), func(name FourCC) Box { return newItemLocationBox(name) })
	r.register(fourCC("iinf"), func(name FourCC) Box { return newItemInfoBox(name) })
	r.register(fourCC("infe"), func(name FourCC) Box { return newItemInfoEntry(name) })
	r.register(fourCC("iref"), func(name FourCC) Box { return newItemReferenceBox(name) })
	r.register(fourCC("dimg"), func(name FourCC) Box { return newSingleItemTypeReferenceBox(name) })
	r.register(fourCC("thmb"), func(name FourCC) Box { return newSingleItemTypeReferenceBox(name) })
	r.register(fourCC("cdsc"), func(name FourCC) Box { return newSingleItemTypeReferenceBox(name) })
	r.register(fourCC("auxl"), func(name FourCC) Box { return newSingleItemTypeReferenceBox(name) })
	r.register(fourCC("pitm"), func(name FourCC) Box { return newPrimaryItemBox(name) })
	r.register(fourCC("ispe"), func(name FourCC) Box { return newImageSpatialExtentsProperty(name) })
	r.register(fourCC("ipma"), func(name FourCC) Box { return newItemPropertyAssociation(name) })
	r.register(fourCC("ipco"), func(name FourCC) Box { return newItemPropertyContainerBox(name) })
	r.register(fourCC("pixi"), func(name FourCC) Box { return newPixelInformationProperty(name) })
	r.register(fourCC("irot"), func(name FourCC) Box { return newImageRotation(name) })
	r.register(fourCC("imir"), func(name FourCC) Box { return newImageMirror(name) })
	r.register(fourCC("colr"), func(name FourCC) Box { return newColourInformationBox(name) })
	r.register(fourCC("hvcC"), func(name FourCC) Box { return newHEVCConfigurationBox(name) })
	r.register(fourCC("avcC"), func(name FourCC) Box { return newAVCConfigurationBox(name) })
	r.register(fourCC("av1C"), func(name FourCC) Box { return newAV1ConfigurationBox(name) })
	r.register(fourCC("stsd"), func(name FourCC) Box { return newSampleDescriptionBox(name) })
	r.register(fourCC("hvc1"), func(name FourCC) Box { return newVisualSampleEntry(name) })
	r.register(fourCC("hev1"), func(name FourCC) Box { return newVisualSampleEntry(name) })
	r.register(fourCC("avc1"), func(name FourCC) Box { return newVisualSampleEntry(name) })
	r.register(fourCC("avc3"), func(name FourCC) Box { return newVisualSampleEntry(name) })
	r.register(fourCC("av01"), func(name FourCC) Box { return newVisualSampleEntry(name) })
	r.register(fourCC("mp4a"), func(name FourCC) Box { return newAudioSampleEntry(name) })
	r.register(fourCC("stss"), func(name FourCC) Box { return newSyncSampleBox(name) })
	r.register(fourCC("stts"), func(name FourCC) Box { return newTimeToSampleBox(name) })
	r.register(fourCC("ctts"), func(name FourCC) Box { return newCompositionOffsetBox(name) })
	r.register(fourCC("frma"), func(name FourCC) Box { return newOriginalFormatBox(name) })
	r.register(fourCC("schm"), func(name FourCC) Box { return newSchemeTypeBox(name) })
	r.register(fourCC("idat"), func(name FourCC) Box { return newItemDataBox(name) })
}
