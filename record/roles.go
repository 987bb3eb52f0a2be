package record

import "strings"

// Role is one of the three identity columns a grade slip prints in
// its title and aside label.
type Role int

const (
	RoleName Role = iota
	RoleCode
	RoleClass
)

func (r Role) String() string {
	switch r {
	case RoleName:
		return "name"
	case RoleCode:
		return "code"
	case RoleClass:
		return "class"
	}
	return "unknown"
}

// roleAliases are matched against trimmed column names, exact and
// case-sensitive. Covers the bilingual headers the template ships.
var roleAliases = map[Role][]string{
	RoleName:  {"姓名", "姓名/Name", "name", "Name"},
	RoleCode:  {"学号", "学号/Code", "code", "Code"},
	RoleClass: {"班级", "班级/Class", "class", "Class"},
}

// positionalIndex is the fallback column index per role when no alias
// matches: first column is the name, second the code, third the class.
var positionalIndex = map[Role]int{
	RoleName:  0,
	RoleCode:  1,
	RoleClass: 2,
}

// Assignment binds a role to a column index. Positional marks that the
// binding came from the fallback order rather than an alias match.
// Missing means no column could serve the role at all; the slip
// renders "-" in its place.
type Assignment struct {
	Column     int
	Positional bool
	Missing    bool
}

// Assignments holds the resolved binding for all three roles.
type Assignments map[Role]Assignment

// Value reads the role's formatted cell out of a record, "-" when the
// role is missing.
func (a Assignments) Value(role Role, columns []string, rec Record) string {
	as, ok := a[role]
	if !ok || as.Missing || as.Column >= len(columns) {
		return "-"
	}
	return rec.Display(columns[as.Column])
}

// ResolveRoles maps each identity role to a column. Alias matches win;
// roles left over fall back to their fixed positional index. With fewer
// than three columns some roles stay unbound and are marked Missing.
func ResolveRoles(columns []string) Assignments {
	out := Assignments{}
	for role, aliases := range roleAliases {
		for i, col := range columns {
			if matchesAlias(col, aliases) {
				out[role] = Assignment{Column: i}
				break
			}
		}
	}
	for role, idx := range positionalIndex {
		if _, ok := out[role]; ok {
			continue
		}
		if idx < len(columns) {
			out[role] = Assignment{Column: idx, Positional: true}
		} else {
			out[role] = Assignment{Column: -1, Missing: true}
		}
	}
	return out
}

func matchesAlias(column string, aliases []string) bool {
	trimmed := strings.TrimSpace(column)
	for _, a := range aliases {
		if trimmed == a {
			return true
		}
	}
	return false
}

// DetailColumns returns, in sheet order, the column indices not
// claimed by any role. These become the slip's key:value body fields.
func DetailColumns(columns []string, roles Assignments) []int {
	claimed := map[int]bool{}
	for _, as := range roles {
		if !as.Missing {
			claimed[as.Column] = true
		}
	}
	var out []int
	for i := range columns {
		if !claimed[i] {
			out = append(out, i)
		}
	}
	return out
}
