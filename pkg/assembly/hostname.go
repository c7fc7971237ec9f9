package assembly

import (
	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/recipe"
)

const (
	hostnameComponentName = "hostname"
	defaultHostname       = "vanilla"
)

func configureHostname(_ *install.Context, _ *partition.Plan, builder *recipe.Builder) error {
	builder.AddPostStep(true, "hostname", defaultHostname)
	return nil
}
