package assembly

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/recipe"
)

const installationComponentName = "installation"

// configureInstallation sets the installation descriptor pointing at the
// selected base image.
func configureInstallation(ctx *install.Context, _ *partition.Plan, builder *recipe.Builder) error {
	source, err := selectBaseImage(ctx)
	if err != nil {
		return err
	}

	builder.SetInstallation(recipe.Installation{
		Method:        recipe.MethodOCI,
		Source:        source,
		InitramfsPre:  []string{},
		InitramfsPost: []string{},
	})

	return nil
}

// selectBaseImage resolves the base image reference. Variant toggles are
// applied in answer order, so when several are enabled the last one wins.
func selectBaseImage(ctx *install.Context) (string, error) {
	variant := install.ImageVariantDefault

	for _, answer := range ctx.Definition.Answers {
		switch {
		case answer.NVIDIA != nil && answer.NVIDIA.UseProprietary:
			variant = install.ImageVariantNVIDIA
		case answer.VM != nil && *answer.VM:
			variant = install.ImageVariantVM
		}
	}

	source, ok := ctx.Definition.System.Images[variant]
	if !ok {
		if variant == install.ImageVariantDefault {
			return "", fmt.Errorf("no base image defined for variant %q", variant)
		}

		zap.S().Warnf("No base image defined for variant %q, falling back to %q",
			variant, install.ImageVariantDefault)
		source = ctx.Definition.System.Images[install.ImageVariantDefault]
	}

	return source, nil
}
