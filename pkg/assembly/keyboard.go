package assembly

import (
	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/recipe"
)

const keyboardComponentName = "keyboard"

// configureKeyboard appends one keyboard step per configured layout entry.
func configureKeyboard(ctx *install.Context, _ *partition.Plan, builder *recipe.Builder) error {
	for _, answer := range ctx.Definition.Answers {
		if answer.Keyboard == nil {
			continue
		}

		for _, layout := range answer.Keyboard.Layouts {
			builder.AddPostStep(true, "keyboard", layout.Layout, layout.Model, layout.Variant)
		}
	}

	return nil
}
