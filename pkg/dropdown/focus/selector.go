package focus

import "strings"

// Matcher decides whether a node counts as an item for traversal purposes.
type Matcher func(Node) bool

// MatchRole matches nodes carrying the given role.
func MatchRole(role string) Matcher {
	return func(n Node) bool { return n.Role() == role }
}

// MatchAny matches every node.
func MatchAny() Matcher {
	return func(Node) bool { return true }
}

// ParseSelector compiles a small CSS-like selector into a Matcher:
//
//	*               every node
//	#save           node with ID "save"
//	[role=menuitem] node with that role
//	menuitem        shorthand for [role=menuitem]
//	a, b            union of selectors
//
// An empty selector matches nothing.
func ParseSelector(selector string) Matcher {
	var parts []Matcher
	for _, raw := range strings.Split(selector, ",") {
		part := strings.TrimSpace(raw)
		if part == "" {
			continue
		}
		parts = append(parts, parseSimple(part))
	}

	if len(parts) == 0 {
		return func(Node) bool { return false }
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return func(n Node) bool {
		for _, m := range parts {
			if m(n) {
				return true
			}
		}
		return false
	}
}

func parseSimple(part string) Matcher {
	switch {
	case part == "*":
		return MatchAny()
	case strings.HasPrefix(part, "#"):
		id := part[1:]
		return func(n Node) bool { return n.ID() == id }
	case strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]"):
		body := part[1 : len(part)-1]
		name, value, ok := strings.Cut(body, "=")
		if !ok || strings.TrimSpace(name) != "role" {
			return func(Node) bool { return false }
		}
		return MatchRole(strings.Trim(strings.TrimSpace(value), `"`))
	default:
		return MatchRole(part)
	}
}
