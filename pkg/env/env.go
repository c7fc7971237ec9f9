package env

import "os"

// Planning-time toggles, inherited from the original installer.
const (
	FakeEnvVar            = "VANILLA_FAKE"
	SkipInstallEnvVar     = "VANILLA_SKIP_INSTALL"
	SkipPostInstallEnvVar = "VANILLA_SKIP_POSTINSTALL"
)

func isSet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

// Fake reports whether planning should only log the configuration
// without producing a recipe file.
func Fake() bool {
	return isSet(FakeEnvVar)
}

// SkipInstall reports whether the disk setup, mountpoints and installation
// descriptor should be left out of the recipe.
func SkipInstall() bool {
	return isSet(SkipInstallEnvVar)
}

// SkipPostInstall reports whether post-installation steps should be left
// out of the recipe.
func SkipPostInstall() bool {
	return isSet(SkipPostInstallEnvVar)
}
