package cmd

import "strings"

// category is the local pre-flight classification of a command, derived from
// its name pattern. It is never stored, always recomputed.
type category int

const (
	catUnclassified category = iota
	catRead
	catLifecycle
	catMutate
)

func (c category) String() string {
	switch c {
	case catRead:
		return "Read"
	case catLifecycle:
		return "Lifecycle"
	case catMutate:
		return "Mutate"
	}
	return "Unclassified"
}

// Role names as reported by the array. The permitted sets below are a
// heuristic approximation of server-side enforcement, not a guarantee; some
// commands can be run by specific users that this table would deny.
const (
	roleAdministrator = "Administrator"
	roleSecurityAdmin = "SecurityAdmin"
	roleCopyOperator  = "CopyOperator"
)

// policyRule is one entry of the ordered policy table: a name predicate, the
// category it assigns, and the roles allowed to run commands of that
// category. A nil role list means any role.
type policyRule struct {
	match    func(name string) bool
	category category
	roles    []string
}

func prefixAny(prefixes ...string) func(string) bool {
	return func(name string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(name, p) {
				return true
			}
		}
		return false
	}
}

// policyTable is checked in order; first match wins.
var policyTable = []policyRule{
	{
		match:    prefixAny("ls"),
		category: catRead,
	},
	{
		match:    prefixAny("start", "stop", "prestart", "prestop"),
		category: catLifecycle,
		roles:    []string{roleAdministrator, roleSecurityAdmin, roleCopyOperator},
	},
	{
		match: func(name string) bool {
			return prefixAny("add", "ch", "mk", "rm")(name) ||
				name == "expandvdisksize" || name == "movevdisk"
		},
		category: catMutate,
		roles:    []string{roleAdministrator, roleSecurityAdmin},
	},
}

// classify maps a command name to its category and the roles permitted to
// run it. Unmatched names are Unclassified: possibly not a real command, to
// be attempted anyway with the server as the final authority.
func classify(name string) (category, []string) {
	for _, rule := range policyTable {
		if rule.match(name) {
			return rule.category, rule.roles
		}
	}
	return catUnclassified, nil
}

// checkAuthorized decides locally whether role may run the command. The
// returned bool reports a true authorization pass; Unclassified commands
// return (false, nil), a non-authoritative "unknown" that does not block
// execution. A denied Lifecycle or Mutate command fails before any request
// is sent.
func checkAuthorized(name, role string) (bool, error) {
	cat, roles := classify(name)
	switch cat {
	case catRead:
		return true, nil
	case catLifecycle, catMutate:
		for _, r := range roles {
			if r == role {
				return true, nil
			}
		}
		return false, &authorizationError{command: name, role: role}
	}
	return false, nil
}
