package recipe

import (
	"fmt"

	"go.uber.org/zap"
)

// Builder accumulates a recipe during planning. Post-installation steps are
// collected in two ordered buckets: regular steps and "late" steps which must
// run after every regular one (e.g. anything requiring the /etc overlay to be
// mounted already). Finalize concatenates the buckets exactly once.
//
// A finalized builder is closed: further appends are deterministic no-ops
// (logged, never applied) and a second Finalize returns an error.
type Builder struct {
	recipe    Recipe
	lateSteps []PostStep
	finalized bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) AddSetupStep(disk string, operation string, params ...any) {
	if b.dropWhenFinalized(operation) {
		return
	}

	b.recipe.Setup = append(b.recipe.Setup, SetupStep{
		Disk:      disk,
		Operation: operation,
		Params:    normalizeParams(params),
	})
}

func (b *Builder) AddMountpoint(partition string, target string) {
	if b.dropWhenFinalized("mountpoint") {
		return
	}

	b.recipe.Mountpoints = append(b.recipe.Mountpoints, Mountpoint{
		Partition: partition,
		Target:    target,
	})
}

// SetInstallation replaces the installation descriptor. Unlike the step
// collections this is not append-only; the last caller wins.
func (b *Builder) SetInstallation(installation Installation) {
	if b.dropWhenFinalized("installation") {
		return
	}

	b.recipe.Installation = installation
}

func (b *Builder) AddPostStep(chroot bool, operation string, params ...any) {
	if b.dropWhenFinalized(operation) {
		return
	}

	b.recipe.PostInstallation = append(b.recipe.PostInstallation, PostStep{
		Chroot:    chroot,
		Operation: operation,
		Params:    normalizeParams(params),
	})
}

// AddLatePostStep queues a step to run after all regular post-installation
// steps, preserving the relative order of late steps among themselves.
func (b *Builder) AddLatePostStep(chroot bool, operation string, params ...any) {
	if b.dropWhenFinalized(operation) {
		return
	}

	b.lateSteps = append(b.lateSteps, PostStep{
		Chroot:    chroot,
		Operation: operation,
		Params:    normalizeParams(params),
	})
}

// Finalize appends the late bucket after the regular steps and closes the
// builder, returning the completed recipe. It must be called exactly once.
func (b *Builder) Finalize() (*Recipe, error) {
	if b.finalized {
		return nil, fmt.Errorf("recipe is already finalized")
	}

	b.recipe.PostInstallation = append(b.recipe.PostInstallation, b.lateSteps...)
	b.lateSteps = nil
	b.finalized = true

	return &b.recipe, nil
}

func (b *Builder) dropWhenFinalized(operation string) bool {
	if b.finalized {
		zap.S().Warnf("Dropping %q: recipe is already finalized", operation)
	}
	return b.finalized
}

// normalizeParams keeps serialized params a JSON array even when a step
// carries none.
func normalizeParams(params []any) []any {
	if params == nil {
		return []any{}
	}
	return params
}
