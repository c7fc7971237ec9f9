package version

import (
	"fmt"
	"runtime/debug"
)

// version is stamped at build time through the linker. Module builds without
// the stamp fall back to the VCS revision baked into the binary.
var version string

// GetVersion returns the version reported by the version subcommand.
func GetVersion() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return fmt.Sprintf("git-%s", setting.Value)
			}
		}
	}

	return "Unknown"
}
