package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionPath(t *testing.T) {
	tests := []struct {
		name     string
		disk     string
		number   int
		expected string
	}{
		{
			name:     "SATA disk appends the number directly",
			disk:     "/dev/sda",
			number:   1,
			expected: "/dev/sda1",
		},
		{
			name:     "NVMe disk separates the number with a p infix",
			disk:     "/dev/nvme0n1",
			number:   3,
			expected: "/dev/nvme0n1p3",
		},
		{
			name:     "Virtio disk appends the number directly",
			disk:     "/dev/vda",
			number:   2,
			expected: "/dev/vda2",
		},
		{
			name:     "Empty disk yields an empty path",
			disk:     "",
			number:   1,
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, PartitionPath(test.disk, test.number))
		})
	}
}

func TestSplitPartition(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedDisk   string
		expectedNumber int
		expectedErr    string
	}{
		{
			name:           "SATA partition",
			path:           "/dev/sda2",
			expectedDisk:   "/dev/sda",
			expectedNumber: 2,
		},
		{
			name:           "NVMe partition",
			path:           "/dev/nvme0n1p3",
			expectedDisk:   "/dev/nvme0n1",
			expectedNumber: 3,
		},
		{
			name:        "Bare disk is rejected",
			path:        "/dev/sda",
			expectedErr: `"/dev/sda" is not a partition device path`,
		},
		{
			name:        "Mapper path is rejected",
			path:        "/dev/mapper/vos--root-root--a",
			expectedErr: `"/dev/mapper/vos--root-root--a" is not a partition device path`,
		},
		{
			name:        "MMC partition is rejected",
			path:        "/dev/mmcblk0p2",
			expectedErr: `"/dev/mmcblk0p2" is not a partition device path`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			disk, number, err := SplitPartition(test.path)

			if test.expectedErr != "" {
				assert.EqualError(t, err, test.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expectedDisk, disk)
			assert.Equal(t, test.expectedNumber, number)
		})
	}
}

func TestPartitionNumber(t *testing.T) {
	number, err := PartitionNumber("/dev/nvme0n1p12")
	require.NoError(t, err)
	assert.Equal(t, 12, number)

	_, err = PartitionNumber("/dev/mapper/foo")
	assert.EqualError(t, err, `"/dev/mapper/foo" carries no partition number`)
}
