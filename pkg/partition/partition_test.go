package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanilla-os/recipegen/pkg/recipe"
)

func TestMapperPath(t *testing.T) {
	assert.Equal(t, "/dev/mapper/vos--root-root--a", mapperPath(RootVG, RootALV))
	assert.Equal(t, "/dev/mapper/vos--root-init", mapperPath(RootVG, InitLV))
	assert.Equal(t, "/dev/mapper/vos--var-var", mapperPath(VarVG, VarLV))
}

func TestQualifyLV(t *testing.T) {
	assert.Equal(t, "vos-root/root-data", qualifyLV(RootVG, ThinDataLV))
}

func TestPlanMountpointLookup(t *testing.T) {
	plan := &Plan{}
	plan.addMountpoint("/dev/vda1", "/boot", RoleBoot)
	plan.addMountpoint(mapperPath(RootVG, RootALV), "/", RoleRootA)

	boot := plan.Mountpoint(RoleBoot)
	require.NotNil(t, boot)
	assert.Equal(t, "/dev/vda1", boot.Partition)

	assert.Nil(t, plan.Mountpoint(RoleVar))
}

func TestPlanApply(t *testing.T) {
	plan := &Plan{}
	plan.addStep("/dev/vda", "label", "gpt")
	plan.addStep("/dev/vda", "mkpart", "boot", "ext4", 1, 1025)
	plan.addMountpoint("/dev/vda1", "/boot", RoleBoot)
	plan.addPostStep(false, "swapon", "/dev/vda5")

	builder := recipe.NewBuilder()
	plan.ApplySetup(builder)
	plan.ApplyPostInstall(builder)

	result, err := builder.Finalize()
	require.NoError(t, err)

	require.Len(t, result.Setup, 2)
	assert.Equal(t, "label", result.Setup[0].Operation)
	assert.Equal(t, []any{"boot", "ext4", 1, 1025}, result.Setup[1].Params)

	require.Len(t, result.Mountpoints, 1)
	assert.Equal(t, recipe.Mountpoint{Partition: "/dev/vda1", Target: "/boot"}, result.Mountpoints[0])

	require.Len(t, result.PostInstallation, 1)
	assert.Equal(t, recipe.PostStep{Chroot: false, Operation: "swapon", Params: []any{"/dev/vda5"}}, result.PostInstallation[0])
}
