package assembly

import (
	"fmt"

	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/recipe"
)

const timezoneComponentName = "timezone"

func configureTimezone(ctx *install.Context, _ *partition.Plan, builder *recipe.Builder) error {
	for _, answer := range ctx.Definition.Answers {
		if answer.Timezone == nil {
			continue
		}

		tz := fmt.Sprintf("%s/%s", answer.Timezone.Region, answer.Timezone.Zone)
		builder.AddPostStep(true, "timezone", tz)
	}

	return nil
}
