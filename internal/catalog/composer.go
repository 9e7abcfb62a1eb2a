package catalog

import (
	"fmt"
	"strings"
)

// Composer package pulled in when update-checker integration is enabled.
const (
	updateCheckerPackage = "yahnis-elsts/plugin-update-checker"
	updateCheckerVersion = "^5.4"
)

type composerRequirement struct {
	pkg     string
	version string
}

// Composer renders composer.json. The require block lists the
// update-checker package first (only when a repository URL is configured),
// then one entry per selected library that declares a composer package, in
// selection order. The block is omitted entirely when no requirement made
// the list.
func (c *Catalog) Composer(d *Data) (string, error) {
	var reqs []composerRequirement

	if d.RepositoryURL != "" {
		reqs = append(reqs, composerRequirement{updateCheckerPackage, updateCheckerVersion})
	}
	for _, id := range d.Libraries {
		lib, ok := libraryRegistry[id]
		if !ok || lib.composerPackage == "" {
			continue
		}
		reqs = append(reqs, composerRequirement{lib.composerPackage, lib.composerVersion})
	}

	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "    %q: %q,\n", "name", "plugsmith/"+d.Slug)
	fmt.Fprintf(&b, "    %q: %q,\n", "description", d.Description)
	fmt.Fprintf(&b, "    %q: %q,\n", "type", "wordpress-plugin")
	fmt.Fprintf(&b, "    %q: %q", "license", "GPL-2.0-or-later")

	if len(reqs) > 0 {
		b.WriteString(",\n    \"require\": {\n")
		for i, req := range reqs {
			fmt.Fprintf(&b, "        %q: %q", req.pkg, req.version)
			if i < len(reqs)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString("    }")
	}

	b.WriteString("\n}\n")
	return b.String(), nil
}
