package search

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// FormatSummary renders a fetched source as a short human-readable block:
// title, type, status, identifiers, and note/link counts when present.
func FormatSummary(src *types.Source) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", src.Title)
	fmt.Fprintf(&b, "   Type: %s\n", src.Type)
	fmt.Fprintf(&b, "   Status: %s\n", src.Status)

	if len(src.Identifiers) > 0 {
		parts := make([]string, 0, len(src.Identifiers))
		for _, idType := range types.IdentifierTypeValues {
			if v, ok := src.Identifiers[idType]; ok {
				parts = append(parts, fmt.Sprintf("%s: %s", idType, v))
			}
		}
		fmt.Fprintf(&b, "   IDs: %s\n", strings.Join(parts, ", "))
	}

	if n := len(src.Notes); n > 0 {
		fmt.Fprintf(&b, "   Notes: %d\n", n)
	}
	if n := len(src.EntityLinks); n > 0 {
		fmt.Fprintf(&b, "   Entity Links: %d\n", n)
	}

	return strings.TrimRight(b.String(), "\n")
}
