package assembly

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/vanilla-os/recipegen/pkg/fileio"
	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/recipe"
	"github.com/vanilla-os/recipegen/pkg/template"
)

const (
	metadataComponentName = "metadata"

	imageMetadataName = "abimage.abr"
	// ociDigestFile is written by the engine's unpacking step; the digest
	// placeholder in the metadata template is resolved from it at execution
	// time.
	ociDigestFile = "/tmp/oci-image-digest"

	abrootConfigPath = "/etc/abroot.json"
)

//go:embed templates/abimage.abr.tpl
var imageMetadataTemplate string

// configureMetadata writes the image metadata descriptor recording which
// base image the installation came from, and flags the target for
// thin-provisioned updates.
func configureMetadata(ctx *install.Context, _ *partition.Plan, builder *recipe.Builder) error {
	source, err := selectBaseImage(ctx)
	if err != nil {
		return err
	}

	values := struct {
		Timestamp string
		Image     string
	}{
		Timestamp: time.Now().Format("2006-01-02T15:04:05-07:00"),
		Image:     source,
	}

	data, err := template.Parse(imageMetadataName, imageMetadataTemplate, values)
	if err != nil {
		return fmt.Errorf("parsing image metadata template: %w", err)
	}

	artifact := artifactPath(ctx, imageMetadataName)
	if err = fileio.WriteFile(artifact, []byte(data), fileio.NonExecutablePerms); err != nil {
		return fmt.Errorf("writing %s: %w", imageMetadataName, err)
	}

	builder.AddPostStep(false, "shell",
		fmt.Sprintf("IMAGE_DIGEST=\"$(cat %s)\" envsubst '$IMAGE_DIGEST' < %s > %s",
			ociDigestFile, artifact, targetPath("/.system/"+imageMetadataName)),
	)

	// The update manager needs to know the roots are thin volumes. The flag
	// is spliced in front of the closing brace of its stock configuration.
	builder.AddPostStep(true, "shell",
		fmt.Sprintf(`sed -i '$ s/}/,\n  "thinProvisioning": true\n}/' %s`, abrootConfigPath),
	)

	return nil
}
