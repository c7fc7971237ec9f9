package assembly

import (
	"fmt"
	"path/filepath"

	"github.com/vanilla-os/recipegen/pkg/env"
	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/log"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/recipe"
)

// targetRoot is where the provisioning engine mounts the active root slot
// while executing the recipe. Non-chroot shell steps address the target
// through this prefix.
const targetRoot = "/mnt/a"

// configureComponent defines the assembly component contract. Each component
// (e.g. "users") inspects the installation definition and the partition plan
// and appends the steps it is responsible for onto the recipe builder.
type configureComponent func(ctx *install.Context, plan *partition.Plan, builder *recipe.Builder) error

type componentWrapper struct {
	name     string
	runnable configureComponent
}

// Configure plans the disk (unless installation is skipped) and runs all
// assembly components in order. Component order is the post-installation
// execution order and is load-bearing: the A/B layout restructure must come
// before anything relying on the relocated filesystem, and the overlay mounts
// must come before the late steps that write through them.
func Configure(ctx *install.Context, builder *recipe.Builder) error {
	var plan *partition.Plan

	if !env.SkipInstall() {
		var err error
		if plan, err = planDisk(ctx); err != nil {
			log.AuditComponentFailed(diskComponentName)
			return fmt.Errorf("planning disk setup: %w", err)
		}

		if plan != nil {
			plan.ApplySetup(builder)
			log.AuditComponentSuccessful(diskComponentName)
		} else {
			log.AuditComponentSkipped(diskComponentName)
		}

		if err = configureInstallation(ctx, plan, builder); err != nil {
			log.AuditComponentFailed(installationComponentName)
			return fmt.Errorf("configuring component %q: %w", installationComponentName, err)
		}
		log.AuditComponentSuccessful(installationComponentName)
	}

	if env.SkipPostInstall() {
		return nil
	}

	if plan != nil {
		plan.ApplyPostInstall(builder)
	}

	components := []componentWrapper{
		{packagesComponentName, configurePackages},
		{hostnameComponentName, configureHostname},
		{timezoneComponentName, configureTimezone},
		{localeComponentName, configureLocale},
		{keyboardComponentName, configureKeyboard},
		{usersComponentName, configureUsers},
	}

	if hasABLayout(plan) {
		components = append(components,
			componentWrapper{mountUnitsComponentName, configureMountUnits},
			componentWrapper{layoutComponentName, configureLayout},
			componentWrapper{firstSetupComponentName, configureFirstSetup},
			componentWrapper{grubComponentName, configureGrub},
			componentWrapper{fstabComponentName, configureFstab},
			componentWrapper{overlayComponentName, configureOverlay},
			componentWrapper{metadataComponentName, configureMetadata},
		)
	}

	for _, component := range components {
		if err := component.runnable(ctx, plan, builder); err != nil {
			log.AuditComponentFailed(component.name)
			return fmt.Errorf("configuring component %q: %w", component.name, err)
		}
	}

	return nil
}

// hasABLayout reports whether the plan provides both root slots and a boot
// partition, the prerequisites of the dual-root bootstrap.
func hasABLayout(plan *partition.Plan) bool {
	if plan == nil {
		return false
	}
	return plan.Mountpoint(partition.RoleRootA) != nil &&
		plan.Mountpoint(partition.RoleRootB) != nil &&
		plan.Mountpoint(partition.RoleBoot) != nil
}

// targetPath prefixes a target filesystem path with the engine's mount root,
// for use in non-chroot shell steps.
func targetPath(path string) string {
	return filepath.Join(targetRoot, path)
}
