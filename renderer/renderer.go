// Package renderer turns engine results into markdown reports. All display
// concerns live here: currency formatting, percentage rounding, and the
// capping of extreme XIRR values. The engine itself never formats anything.
package renderer

import (
	"fmt"
	"strings"
	"text/template"
)

// renderTemplate is a generic utility to render one of the inline templates.
func renderTemplate(templateName, content string, data any) string {
	tmpl, err := template.New(templateName).Parse(content)
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", templateName, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
