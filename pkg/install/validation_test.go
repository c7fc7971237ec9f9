package install

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDefinition() *Definition {
	return &Definition{
		APIVersion: "1.0",
		Answers: []FinalAnswer{
			{
				Disk: &DiskAnswer{
					Auto: &AutoDisk{Device: "/dev/vda", Size: int64(64) * 1024 * 1024 * 1024},
				},
			},
			{
				Encryption: &EncryptionAnswer{Enabled: false},
			},
			{
				Users: &UserAnswer{Username: "alex", Fullname: "Alex", Password: "secret"},
			},
		},
		System: SystemRecipe{
			Images: map[string]string{
				ImageVariantDefault: "registry.vanillaos.org/desktop:latest",
			},
		},
	}
}

func TestValidateDefinition(t *testing.T) {
	require.NoError(t, ValidateDefinition(validDefinition()))
}

func TestValidateDefinition_Failures(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Definition)
		expectedErr string
	}{
		{
			name: "No base images",
			mutate: func(d *Definition) {
				d.System.Images = nil
			},
			expectedErr: "no base images defined",
		},
		{
			name: "Missing default image",
			mutate: func(d *Definition) {
				d.System.Images = map[string]string{
					ImageVariantNVIDIA: "registry.vanillaos.org/nvidia:latest",
				}
			},
			expectedErr: `base image "default" not defined`,
		},
		{
			name: "Malformed image reference",
			mutate: func(d *Definition) {
				d.System.Images[ImageVariantDefault] = "REGISTRY/Desktop::"
			},
			expectedErr: `base image "default" is not a valid reference`,
		},
		{
			name: "Negative root size",
			mutate: func(d *Definition) {
				d.System.RootSize = -1
			},
			expectedErr: "rootSize must not be negative",
		},
		{
			name: "Disk answered twice",
			mutate: func(d *Definition) {
				d.Answers = append(d.Answers, FinalAnswer{
					Disk: &DiskAnswer{Auto: &AutoDisk{Device: "/dev/vdb"}},
				})
			},
			expectedErr: "disk answered more than once",
		},
		{
			name: "Encryption answered twice",
			mutate: func(d *Definition) {
				d.Answers = append(d.Answers, FinalAnswer{
					Encryption: &EncryptionAnswer{},
				})
			},
			expectedErr: "encryption answered more than once",
		},
		{
			name: "Encryption enabled without password",
			mutate: func(d *Definition) {
				d.Answers[1].Encryption = &EncryptionAnswer{Enabled: true}
			},
			expectedErr: "encryption is enabled but no password is set",
		},
		{
			name: "Timezone without zone",
			mutate: func(d *Definition) {
				d.Answers = append(d.Answers, FinalAnswer{
					Timezone: &TimezoneAnswer{Region: "Europe"},
				})
			},
			expectedErr: "timezone must carry both region and zone",
		},
		{
			name: "User without username",
			mutate: func(d *Definition) {
				d.Answers[2].Users = &UserAnswer{Password: "secret"}
			},
			expectedErr: "user answer is missing the username",
		},
		{
			name: "User without password",
			mutate: func(d *Definition) {
				d.Answers[2].Users = &UserAnswer{Username: "alex"}
			},
			expectedErr: `user "alex" is missing a password`,
		},
		{
			name: "Keyboard entry without layout",
			mutate: func(d *Definition) {
				d.Answers = append(d.Answers, FinalAnswer{
					Keyboard: &KeyboardAnswer{Layouts: []KeyboardLayout{{Model: "pc105"}}},
				})
			},
			expectedErr: "keyboard entry is missing the layout",
		},
		{
			name: "Disk without configuration",
			mutate: func(d *Definition) {
				d.Answers[0].Disk = &DiskAnswer{}
			},
			expectedErr: "disk answer carries neither an auto nor a manual configuration",
		},
		{
			name: "Disk with both configurations",
			mutate: func(d *Definition) {
				d.Answers[0].Disk.Manual = &ManualDisk{
					Partitions: []ManualPartition{{Device: "/dev/sda1", Mount: "/boot"}},
				}
			},
			expectedErr: "disk answer carries both an auto and a manual configuration",
		},
		{
			name: "Auto disk without device",
			mutate: func(d *Definition) {
				d.Answers[0].Disk.Auto = &AutoDisk{}
			},
			expectedErr: "auto disk configuration is missing the target device",
		},
		{
			name: "Auto disk without size",
			mutate: func(d *Definition) {
				d.Answers[0].Disk.Auto = &AutoDisk{Device: "/dev/vda"}
			},
			expectedErr: "auto disk configuration is missing the device size",
		},
		{
			name: "Manual disk without partitions",
			mutate: func(d *Definition) {
				d.Answers[0].Disk = &DiskAnswer{Manual: &ManualDisk{}}
			},
			expectedErr: "manual disk configuration lists no partitions",
		},
		{
			name: "Manual partition with unsupported mount",
			mutate: func(d *Definition) {
				d.Answers[0].Disk = &DiskAnswer{Manual: &ManualDisk{
					Partitions: []ManualPartition{{Device: "/dev/sda1", Mount: "boot"}},
				}}
			},
			expectedErr: `manual partition "/dev/sda1" has unsupported mount target "boot"`,
		},
		{
			name: "Manual root partition without size",
			mutate: func(d *Definition) {
				d.Answers[0].Disk = &DiskAnswer{Manual: &ManualDisk{
					Partitions: []ManualPartition{{Device: "/dev/sda2", Mount: "/"}},
				}}
			},
			expectedErr: `manual root partition "/dev/sda2" needs a positive size`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			definition := validDefinition()
			test.mutate(definition)

			err := ValidateDefinition(definition)
			require.Error(t, err)
			assert.ErrorContains(t, err, test.expectedErr)
		})
	}
}
