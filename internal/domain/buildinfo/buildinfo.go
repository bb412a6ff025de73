package buildinfo

import "strings"

// fieldSeparator separates consecutive selected fields.
const fieldSeparator = " "

// VersionInfo is the version metadata reported by a native library.
type VersionInfo struct {
	// Version is the semantic version.
	Version string
	// Hash is the short source-control revision.
	Hash string
	// BuildTime is the build timestamp.
	BuildTime string
}

// Selection picks which VersionInfo fields are printed.
type Selection struct {
	// Version selects VersionInfo.Version.
	Version bool
	// Hash selects VersionInfo.Hash.
	Hash bool
	// BuildTime selects VersionInfo.BuildTime.
	BuildTime bool
}

// All selects every field.
func All() Selection {
	return Selection{Version: true, Hash: true, BuildTime: true}
}

// IsEmpty reports whether no field is selected.
func (s Selection) IsEmpty() bool {
	return !s.Version && !s.Hash && !s.BuildTime
}

// Normalize returns All for an empty selection and s otherwise.
func (s Selection) Normalize() Selection {
	if s.IsEmpty() {
		return All()
	}

	return s
}

// Format renders the selected fields of info in the fixed order
// version, hash, build time, separated by single spaces.
// An empty selection renders every field.
func Format(info VersionInfo, sel Selection) string {
	sel = sel.Normalize()

	fields := make([]string, 0, 3)

	if sel.Version {
		fields = append(fields, info.Version)
	}

	if sel.Hash {
		fields = append(fields, info.Hash)
	}

	if sel.BuildTime {
		fields = append(fields, info.BuildTime)
	}

	return strings.Join(fields, fieldSeparator)
}
