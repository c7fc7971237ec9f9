package install

import (
	"fmt"
	"strings"

	"github.com/containers/image/v5/docker/reference"
)

// ValidateDefinition checks the parsed definition before any planning runs.
// Contract violations (e.g. encryption without a password) are caught here so
// the planner can assume a well-formed input.
func ValidateDefinition(definition *Definition) error {
	if err := validateSystem(&definition.System); err != nil {
		return fmt.Errorf("error validating system recipe: %w", err)
	}

	if err := validateAnswers(definition.Answers); err != nil {
		return fmt.Errorf("error validating answers: %w", err)
	}

	return nil
}

func validateSystem(system *SystemRecipe) error {
	if len(system.Images) == 0 {
		return fmt.Errorf("no base images defined")
	}

	if _, ok := system.Images[ImageVariantDefault]; !ok {
		return fmt.Errorf("base image %q not defined", ImageVariantDefault)
	}

	for variant, ref := range system.Images {
		if _, err := reference.ParseNormalizedNamed(ref); err != nil {
			return fmt.Errorf("base image %q is not a valid reference: %w", variant, err)
		}
	}

	if system.RootSize < 0 {
		return fmt.Errorf("rootSize must not be negative")
	}

	return nil
}

func validateAnswers(answers []FinalAnswer) error {
	var (
		diskSeen       bool
		encryptionSeen bool
	)

	for _, answer := range answers {
		switch {
		case answer.Disk != nil:
			if diskSeen {
				return fmt.Errorf("disk answered more than once")
			}
			diskSeen = true
			if err := validateDisk(answer.Disk); err != nil {
				return err
			}
		case answer.Encryption != nil:
			if encryptionSeen {
				return fmt.Errorf("encryption answered more than once")
			}
			encryptionSeen = true
			if answer.Encryption.Enabled && answer.Encryption.Password == "" {
				return fmt.Errorf("encryption is enabled but no password is set")
			}
		case answer.Timezone != nil:
			if answer.Timezone.Region == "" || answer.Timezone.Zone == "" {
				return fmt.Errorf("timezone must carry both region and zone")
			}
		case answer.Users != nil:
			if answer.Users.Username == "" {
				return fmt.Errorf("user answer is missing the username")
			}
			if answer.Users.Password == "" {
				return fmt.Errorf("user %q is missing a password", answer.Users.Username)
			}
		case answer.Keyboard != nil:
			for _, layout := range answer.Keyboard.Layouts {
				if layout.Layout == "" {
					return fmt.Errorf("keyboard entry is missing the layout")
				}
			}
		}
	}

	return nil
}

func validateDisk(disk *DiskAnswer) error {
	if disk.Auto == nil && disk.Manual == nil {
		return fmt.Errorf("disk answer carries neither an auto nor a manual configuration")
	}
	if disk.Auto != nil && disk.Manual != nil {
		return fmt.Errorf("disk answer carries both an auto and a manual configuration")
	}

	if disk.Auto != nil {
		if disk.Auto.Device == "" {
			return fmt.Errorf("auto disk configuration is missing the target device")
		}
		if disk.Auto.Size <= 0 {
			return fmt.Errorf("auto disk configuration is missing the device size")
		}
		return nil
	}

	if len(disk.Manual.Partitions) == 0 {
		return fmt.Errorf("manual disk configuration lists no partitions")
	}

	for _, part := range disk.Manual.Partitions {
		if part.Device == "" {
			return fmt.Errorf("manual partition is missing the device path")
		}
		if part.Mount != "swap" && !strings.HasPrefix(part.Mount, "/") {
			return fmt.Errorf("manual partition %q has unsupported mount target %q", part.Device, part.Mount)
		}
		if part.Mount == "/" && part.Size <= 0 {
			return fmt.Errorf("manual root partition %q needs a positive size", part.Device)
		}
	}

	return nil
}
