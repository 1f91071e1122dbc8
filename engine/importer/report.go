package importer

import (
	"fmt"
	"strings"
)

// maxErrorsShown caps the error listing in Summary.
const maxErrorsShown = 5

// Report is the import API's 200 response. Every field is optional on
// the wire; whatever the API leaves out reads as zero.
type Report struct {
	Brands  int      `json:"brands"`
	Models  int      `json:"models"`
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// Summary renders the report for console output. The error list is
// truncated to the first five entries.
func (r Report) Summary() string {
	var b strings.Builder
	b.WriteString("Import successful!\n")
	fmt.Fprintf(&b, "   Brands processed: %d\n", r.Brands)
	fmt.Fprintf(&b, "   Models processed: %d\n", r.Models)
	fmt.Fprintf(&b, "   Created: %d\n", r.Created)
	fmt.Fprintf(&b, "   Updated: %d\n", r.Updated)
	fmt.Fprintf(&b, "   Skipped: %d\n", r.Skipped)
	if len(r.Errors) > 0 {
		fmt.Fprintf(&b, "   Errors: %d\n", len(r.Errors))
		shown := r.Errors
		if len(shown) > maxErrorsShown {
			shown = shown[:maxErrorsShown]
		}
		for _, e := range shown {
			fmt.Fprintf(&b, "      - %s\n", e)
		}
		if rest := len(r.Errors) - maxErrorsShown; rest > 0 {
			fmt.Fprintf(&b, "      ... and %d more\n", rest)
		}
	}
	return b.String()
}
