package stackpaint

// Version information for the stackpaint library.
const (
	// Version is the current version of the library.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides runtime information about the library.
type Info struct {
	// Version is the library version string.
	Version string

	// Sentinel is the paint word written over unused stack memory.
	Sentinel uint32

	// LinkerLayout indicates whether the layout came from the linker
	// provided symbols (true) or must be supplied via InitLayout.
	LinkerLayout bool
}

// GetInfo returns information about the library and its configuration.
//
// Example:
//
//	info := stackpaint.GetInfo()
//	fmt.Printf("stackpaint %s (sentinel %#x)\n", info.Version, info.Sentinel)
func GetInfo() Info {
	return Info{
		Version:      Version,
		Sentinel:     PaintValue,
		LinkerLayout: Init(),
	}
}
