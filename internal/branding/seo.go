package branding

import "strings"

// ApplyTitleTemplate substitutes the page name into the workspace title
// template. Templates carry exactly one %s; a template without it degrades
// to the template verbatim.
func ApplyTitleTemplate(template, page string) string {
	if !strings.Contains(template, "%s") {
		return template
	}
	return strings.Replace(template, "%s", page, 1)
}
