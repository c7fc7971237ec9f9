package assembly

import (
	"fmt"

	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/recipe"
)

const usersComponentName = "users"

// userGroups is the fixed group list every created user joins.
var userGroups = []any{"sudo", "lpadmin"}

func configureUsers(ctx *install.Context, _ *partition.Plan, builder *recipe.Builder) error {
	for _, answer := range ctx.Definition.Answers {
		if answer.Users == nil {
			continue
		}

		user := answer.Users
		builder.AddPostStep(true, "adduser", user.Username, user.Fullname, userGroups, user.Password)
	}

	// Home ownership is handed over late: the home directory only reaches its
	// final place once the overlay and bind mounts from the regular steps are
	// up.
	if user := ctx.Definition.FirstUser(); user != nil {
		builder.AddLatePostStep(true, "shell",
			fmt.Sprintf("chown -R %s:%s /home/%s", user.Username, user.Username, user.Username))
	}

	return nil
}
