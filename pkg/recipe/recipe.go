package recipe

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/vanilla-os/recipegen/pkg/fileio"
)

// InstallationMethod values understood by the provisioning engine.
const (
	MethodUnsquashfs = "unsquashfs"
	MethodOCI        = "oci"
)

// Recipe is the single artifact handed to the external provisioning engine.
// Field names and their JSON keys are part of the wire contract and must not
// change independently of the engine.
type Recipe struct {
	Setup            []SetupStep  `json:"setup"`
	Mountpoints      []Mountpoint `json:"mountpoints"`
	Installation     Installation `json:"installation"`
	PostInstallation []PostStep   `json:"postInstallation"`
}

// SetupStep is one disk-level operation. The sequence order is the
// execution order.
type SetupStep struct {
	Disk      string `json:"disk"`
	Operation string `json:"operation"`
	Params    []any  `json:"params"`
}

// Mountpoint maps a partition or device-mapper path to its mount target.
// The engine expects two "/" entries, the first being the active root slot.
type Mountpoint struct {
	Partition string `json:"partition"`
	Target    string `json:"target"`
}

// Installation describes how the base system lands on the new root.
type Installation struct {
	Method        string   `json:"method"`
	Source        string   `json:"source"`
	InitramfsPre  []string `json:"initramfsPre"`
	InitramfsPost []string `json:"initramfsPost"`
}

// PostStep is one post-installation operation, optionally run inside the
// target chroot.
type PostStep struct {
	Chroot    bool   `json:"chroot"`
	Operation string `json:"operation"`
	Params    []any  `json:"params"`
}

// Parse decodes a serialized recipe. Used to verify round-trips and by tools
// inspecting a previously generated plan.
func Parse(data []byte) (*Recipe, error) {
	var recipe Recipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf("could not parse the recipe: %w", err)
	}

	return &recipe, nil
}

// WriteFile serializes the recipe into a uniquely named executable file under
// dir and returns its path.
func (r *Recipe) WriteFile(dir string) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshalling recipe: %w", err)
	}

	return WriteData(data, dir)
}

// WriteData writes an already serialized recipe into a uniquely named
// executable file under dir and returns its path.
func WriteData(data []byte, dir string) (string, error) {
	filename := filepath.Join(dir, fmt.Sprintf("recipe-%s.json", uuid.NewString()))
	if err := fileio.WriteFile(filename, data, fileio.ExecutablePerms); err != nil {
		return "", fmt.Errorf("writing recipe file: %w", err)
	}

	return filename, nil
}

// ReadFile loads a recipe previously emitted with WriteFile.
func ReadFile(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe file: %w", err)
	}

	return Parse(data)
}
