package assembly

import (
	"fmt"

	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/recipe"
)

const overlayComponentName = "overlay"

// configureOverlay mounts the writable views the remaining (late) steps
// write through: the /etc overlay backed by the slot-A state directory under
// /var/lib/abroot, the read-write home/opt binds, the read-only usr bind and
// the locale override.
func configureOverlay(_ *install.Context, _ *partition.Plan, builder *recipe.Builder) error {
	abrootEtc := targetPath("/var/lib/abroot/etc/a")
	abrootEtcWork := targetPath("/var/lib/abroot/etc/a-work")

	builder.AddPostStep(false, "shell",
		fmt.Sprintf("mkdir -p %s %s %s %s %s",
			abrootEtc, abrootEtcWork,
			targetPath("/var/home"), targetPath("/var/opt"), targetPath("/var/lib/abroot/locale")),
		fmt.Sprintf("mount -t overlay overlay -o lowerdir=%s,upperdir=%s,workdir=%s %s",
			targetPath("/.system/etc"), abrootEtc, abrootEtcWork, targetPath("/etc")),
		fmt.Sprintf("mount -o bind %s %s", targetPath("/var/home"), targetPath("/home")),
		fmt.Sprintf("mount -o bind %s %s", targetPath("/var/opt"), targetPath("/opt")),
		fmt.Sprintf("mount -o bind,ro %s %s", targetPath("/.system/usr"), targetPath("/usr")),
		fmt.Sprintf("mount -o bind %s %s", targetPath("/var/lib/abroot/locale"), targetPath("/usr/lib/locale")),
	)

	return nil
}
