package install

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Base image variant names understood by the installation component.
const (
	ImageVariantDefault = "default"
	ImageVariantNVIDIA  = "nvidia"
	ImageVariantVM      = "vm"
)

// Definition is the full input of a planning run: the ordered list of final
// answers collected by the installer frontend plus the system recipe shipped
// with the live medium.
type Definition struct {
	APIVersion string        `yaml:"apiVersion"`
	Answers    []FinalAnswer `yaml:"answers"`
	System     SystemRecipe  `yaml:"system"`
}

// FinalAnswer is one user decision, tagged by kind. Exactly one of the
// pointer fields is expected to be set per entry. Order in the answers list
// is preserved; it matters for the variant toggles (last one wins) but not
// for the rest.
type FinalAnswer struct {
	Disk       *DiskAnswer       `yaml:"disk,omitempty"`
	Encryption *EncryptionAnswer `yaml:"encryption,omitempty"`
	Timezone   *TimezoneAnswer   `yaml:"timezone,omitempty"`
	Language   string            `yaml:"language,omitempty"`
	Keyboard   *KeyboardAnswer   `yaml:"keyboard,omitempty"`
	Users      *UserAnswer       `yaml:"users,omitempty"`
	NVIDIA     *NVIDIAAnswer     `yaml:"nvidia,omitempty"`
	VM         *bool             `yaml:"vm,omitempty"`
}

type DiskAnswer struct {
	Auto   *AutoDisk   `yaml:"auto,omitempty"`
	Manual *ManualDisk `yaml:"manual,omitempty"`
}

// AutoDisk wipes a whole device. Size is the device's capacity in bytes as
// probed by the frontend; the var volume is sized from it. RemovePVs/RemoveVGs
// list any LVM metadata the frontend probed on the device; it is torn down
// before the new label is written.
type AutoDisk struct {
	Device    string   `yaml:"device"`
	Size      int64    `yaml:"size"` // bytes
	RemovePVs []string `yaml:"removePvs,omitempty"`
	RemoveVGs []string `yaml:"removeVgs,omitempty"`
}

type ManualDisk struct {
	Partitions []ManualPartition `yaml:"partitions"`
}

// ManualPartition describes one pre-created partition the user assigned a
// role to. PV/VG reference any LVM metadata currently occupying the
// partition, to be torn down before setup.
type ManualPartition struct {
	Device     string `yaml:"device"`
	Filesystem string `yaml:"filesystem"`
	Mount      string `yaml:"mount"`
	Size       int64  `yaml:"size"` // bytes
	PV         string `yaml:"pv,omitempty"`
	VG         string `yaml:"vg,omitempty"`
}

type EncryptionAnswer struct {
	Enabled  bool   `yaml:"enabled"`
	Password string `yaml:"password,omitempty"`
}

type TimezoneAnswer struct {
	Region string `yaml:"region"`
	Zone   string `yaml:"zone"`
}

type KeyboardAnswer struct {
	Layouts []KeyboardLayout `yaml:"layouts"`
}

type KeyboardLayout struct {
	Layout  string `yaml:"layout"`
	Model   string `yaml:"model"`
	Variant string `yaml:"variant"`
}

type UserAnswer struct {
	Username string `yaml:"username"`
	Fullname string `yaml:"fullname"`
	Password string `yaml:"password"`
}

type NVIDIAAnswer struct {
	UseProprietary bool `yaml:"use-proprietary"`
}

// SystemRecipe is the small descriptor shipped on the live medium: the
// available base image references keyed by variant and the default root size.
type SystemRecipe struct {
	Images   map[string]string `yaml:"images"`
	RootSize int               `yaml:"rootSize"`
}

func ParseDefinition(data []byte) (*Definition, error) {
	var definition Definition

	if err := yaml.Unmarshal(data, &definition); err != nil {
		return nil, fmt.Errorf("could not parse the installation definition: %w", err)
	}

	return &definition, nil
}

// Disk returns the first disk answer, or nil when the run carries no disk
// configuration (image-update-only flows).
func (d *Definition) Disk() *DiskAnswer {
	for i := range d.Answers {
		if d.Answers[i].Disk != nil {
			return d.Answers[i].Disk
		}
	}
	return nil
}

// Encryption returns the first encryption answer, or nil when none was given.
func (d *Definition) Encryption() *EncryptionAnswer {
	for i := range d.Answers {
		if d.Answers[i].Encryption != nil {
			return d.Answers[i].Encryption
		}
	}
	return nil
}

// FirstUser returns the first user answer, or nil. The users component hands
// it ownership of its home directory once the overlay mounts are in place.
func (d *Definition) FirstUser() *UserAnswer {
	for i := range d.Answers {
		if d.Answers[i].Users != nil {
			return d.Answers[i].Users
		}
	}
	return nil
}
