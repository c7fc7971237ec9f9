package assembly

import (
	_ "embed"
	"fmt"

	"github.com/vanilla-os/recipegen/pkg/fileio"
	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/recipe"
)

const (
	firstSetupComponentName = "first-setup"

	// firstSetupUser is the unprivileged account the target boots into for
	// the guided first configuration. No password is set, so password login
	// for it stays disabled.
	firstSetupUser     = "vanilla-first-setup"
	firstSetupFullname = "Vanilla OS First Setup"

	autostartEntryName = "org.vanillaos.FirstSetup.desktop"
)

//go:embed templates/org.vanillaos.FirstSetup.desktop
var autostartEntry string

// configureFirstSetup creates the first-setup account and wires autologin
// into it. Every step is late: the account and its configuration must land
// in the /etc overlay and the /var-backed home, which only exist once the
// overlay mounts from the regular steps are in place.
func configureFirstSetup(ctx *install.Context, _ *partition.Plan, builder *recipe.Builder) error {
	artifact := artifactPath(ctx, autostartEntryName)
	if err := fileio.WriteFile(artifact, []byte(autostartEntry), fileio.NonExecutablePerms); err != nil {
		return fmt.Errorf("writing %s: %w", autostartEntryName, err)
	}

	builder.AddLatePostStep(true, "adduser", firstSetupUser, firstSetupFullname, []any{})

	builder.AddLatePostStep(true, "shell",
		"mkdir -p /etc/gdm3",
		fmt.Sprintf("printf '[daemon]\\nAutomaticLoginEnable=true\\nAutomaticLogin=%s\\n' > /etc/gdm3/custom.conf", firstSetupUser),
		fmt.Sprintf("mkdir -p /home/%s/.config", firstSetupUser),
		fmt.Sprintf("rm -f /home/%s/.config/gnome-initial-setup-done", firstSetupUser),
	)

	autostartDir := targetPath(fmt.Sprintf("/home/%s/.config/autostart", firstSetupUser))
	builder.AddLatePostStep(false, "shell",
		fmt.Sprintf("mkdir -p %s", autostartDir),
		fmt.Sprintf("cp %s %s/%s", artifact, autostartDir, autostartEntryName),
	)

	builder.AddLatePostStep(true, "shell",
		fmt.Sprintf("chown -R %s:%s /home/%s", firstSetupUser, firstSetupUser, firstSetupUser))

	return nil
}
