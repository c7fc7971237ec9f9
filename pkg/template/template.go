package template

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Parse renders an embedded artifact template, such as a mount unit or the
// boot configuration, against templateData. The "join" helper is available to
// templates taking list-valued fields.
func Parse(name string, contents string, templateData any) (string, error) {
	if templateData == nil {
		return "", fmt.Errorf("template data not provided")
	}

	funcs := template.FuncMap{"join": strings.Join}

	tmpl, err := template.New(name).Funcs(funcs).Parse(contents)
	if err != nil {
		return "", fmt.Errorf("parsing contents: %w", err)
	}

	var buff bytes.Buffer
	if err = tmpl.Execute(&buff, templateData); err != nil {
		return "", fmt.Errorf("applying template: %w", err)
	}

	return buff.String(), nil
}
