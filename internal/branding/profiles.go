package branding

// builtinPalettes are the factory palettes a profile falls back to when a
// document has no stored entry for that name.
func builtinPalette(name string) (ColorSet, bool) {
	switch name {
	case ProfileDark:
		return DarkPalette(), true
	case ProfileWhite:
		return WhitePalette(), true
	default:
		return ColorSet{}, false
	}
}

// SnapshotProfile writes the flat color fields into the profile map under
// the currently selected name, so the active profile's edits are never lost
// when switching away or saving.
func (d *Document) SnapshotProfile() {
	if d.Colors == nil || d.Colors.SelectedProfile == "" {
		return
	}
	if d.Colors.Profiles == nil {
		d.Colors.Profiles = make(map[string]ColorSet)
	}
	d.Colors.Profiles[d.Colors.SelectedProfile] = d.Colors.ColorSet
}

// SwitchProfile moves the draft to a named color profile:
//
//  1. snapshot the outgoing profile's flat values,
//  2. select the new name,
//  3. load the stored set for that name, or the built-in palette, or —
//     for a brand new name — keep the outgoing values as its starting point.
func SwitchProfile(d *Document, name string) {
	if d.Colors == nil {
		d.Colors = &Colors{}
	}
	d.SnapshotProfile()
	d.Colors.SelectedProfile = name

	if set, ok := d.Colors.Profiles[name]; ok {
		d.Colors.ColorSet = set
		return
	}
	if set, ok := builtinPalette(name); ok {
		d.Colors.ColorSet = set
	}
	// Unknown names clone whatever is currently in the draft.
	if d.Colors.Profiles == nil {
		d.Colors.Profiles = make(map[string]ColorSet)
	}
	d.Colors.Profiles[name] = d.Colors.ColorSet
}
