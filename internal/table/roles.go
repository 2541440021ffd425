package table

import (
	"regexp"
	"sort"
)

// Role is one of the semantic column roles the pipeline understands.
type Role string

const (
	RoleAge    Role = "age"
	RoleDate   Role = "date"
	RoleHeight Role = "height"
	RoleWeight Role = "weight"
)

// rolePatterns is the ordered rule list used to assign roles to header names.
// Matching is case-insensitive substring containment.
var rolePatterns = []struct {
	role Role
	re   *regexp.Regexp
}{
	{RoleAge, regexp.MustCompile(`(?i)age`)},
	{RoleDate, regexp.MustCompile(`(?i)date|time`)},
	{RoleHeight, regexp.MustCompile(`(?i)height`)},
	{RoleWeight, regexp.MustCompile(`(?i)weight`)},
}

// RoleMap records which column name serves each resolved role.
type RoleMap map[Role]string

// Resolve assigns semantic roles to the given header names. Candidates are
// sorted lexicographically before matching so that when several columns match
// the same role, the lexicographically earliest name wins regardless of input
// order. One of age/date must resolve; when both do, date wins and age is
// dropped so each run has a single time axis. Every role listed in required
// must also resolve, or a MissingRoleError naming it is returned.
func Resolve(columns []string, required ...Role) (RoleMap, error) {
	sorted := make([]string, len(columns))
	copy(sorted, columns)
	sort.Strings(sorted)

	m := make(RoleMap, len(rolePatterns))
	for _, p := range rolePatterns {
		for _, name := range sorted {
			if p.re.MatchString(name) {
				m[p.role] = name
				break
			}
		}
	}
	if _, ok := m[RoleDate]; ok {
		delete(m, RoleAge)
	}

	if _, hasAge := m[RoleAge]; !hasAge {
		if _, hasDate := m[RoleDate]; !hasDate {
			return nil, &MissingRoleError{Role: "age/date"}
		}
	}
	for _, r := range required {
		if _, ok := m[r]; !ok {
			return nil, &MissingRoleError{Role: string(r)}
		}
	}
	return m, nil
}
