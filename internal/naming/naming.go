// Package naming derives the identifier forms used throughout a generated plugin.
package naming

import "strings"

// Slugify converts a human-readable plugin name into a file-safe slug.
// Every maximal run of characters outside [a-z0-9] collapses into a single
// hyphen, and leading/trailing hyphens are stripped. An empty or all-symbol
// input yields an empty slug; callers must treat that as invalid.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}

// Namespace converts a slug into the PascalCase token used to prefix
// generated class names: "my-cool-plugin" becomes "MyCoolPlugin".
func Namespace(slug string) string {
	segments := strings.Split(slug, "-")
	var b strings.Builder
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}
	return b.String()
}

// FunctionToken converts a slug into a snake_case token safe for use in
// generated function names.
func FunctionToken(slug string) string {
	return strings.ReplaceAll(slug, "-", "_")
}

// ConstantToken converts a slug into the SCREAMING_SNAKE token used for the
// generated version constant.
func ConstantToken(slug string) string {
	return strings.ToUpper(FunctionToken(slug))
}
