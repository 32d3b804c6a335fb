package search

import (
	"fmt"
	"net/url"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// SourceInput is the loosely-typed field bag adapters collect before
// calling the store.
type SourceInput struct {
	Title           string
	SourceType      string
	IdentifierType  string
	IdentifierValue string
}

// ValidateSourceInput checks a field bag for early, human-readable
// feedback: required fields present, type fields inside their
// vocabularies, and a URL shape check when the identifier type is url.
// An empty result means valid. This validation is advisory; the store
// re-validates independently and is the authority.
func ValidateSourceInput(in SourceInput) []string {
	var errs []string

	required := []struct {
		name  string
		value string
	}{
		{"title", in.Title},
		{"source_type", in.SourceType},
		{"identifier_type", in.IdentifierType},
		{"identifier_value", in.IdentifierValue},
	}
	for _, f := range required {
		if f.value == "" {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", f.name))
		}
	}

	if in.SourceType != "" && !types.ValidSourceType(in.SourceType) {
		errs = append(errs, fmt.Sprintf("Invalid source type: %s", in.SourceType))
	}
	if in.IdentifierType != "" && !types.ValidIdentifierType(in.IdentifierType) {
		errs = append(errs, fmt.Sprintf("Invalid identifier type: %s", in.IdentifierType))
	}

	if in.IdentifierType == types.IdentifierURL && in.IdentifierValue != "" && !ValidURL(in.IdentifierValue) {
		errs = append(errs, "Invalid URL format")
	}

	return errs
}

// ValidURL reports whether s looks like a usable http or https URL:
// an http/https scheme and a host, with port and path optional.
func ValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Hostname() != ""
}
