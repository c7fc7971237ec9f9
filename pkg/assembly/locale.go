package assembly

import (
	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/recipe"
)

const localeComponentName = "locale"

func configureLocale(ctx *install.Context, _ *partition.Plan, builder *recipe.Builder) error {
	for _, answer := range ctx.Definition.Answers {
		if answer.Language == "" {
			continue
		}

		builder.AddPostStep(true, "locale", answer.Language)
	}

	return nil
}
