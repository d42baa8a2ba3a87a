package classify

import (
	"jobposts-engine/internal/domain"
	"jobposts-engine/internal/embedded"
)

// DegreeLevel is the degree of the first academic requirement. The label
// set is open: whatever the export names.
func DegreeLevel(v domain.Value) string {
	return embedded.DegreeLevel(v)
}
