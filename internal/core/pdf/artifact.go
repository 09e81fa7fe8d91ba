package pdf

import (
	"fmt"
	"strings"
	"time"
)

// ArtifactName derives the deterministic download filename
// invoice-<number|draft>-<epochMillis>.pdf. The invoice number is slugged so
// free-text numbers stay filesystem safe; an empty number becomes "draft".
func ArtifactName(invoiceNumber string, now time.Time) string {
	slug := slugify(invoiceNumber)
	if slug == "" {
		slug = "draft"
	}
	return fmt.Sprintf("invoice-%s-%d.pdf", slug, now.UnixMilli())
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r == ' ', r == '_', r == '/', r == '#':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
