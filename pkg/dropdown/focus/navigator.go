package focus

// MenuRole is the role marker that opts a container into menu focus
// behavior (auto-focusing the first item when it opens).
const MenuRole = "menu"

// Items collects the focusable descendants of root matching the matcher, in
// document order. The root itself is never an item. A nil root or matcher
// yields no items.
func Items(root Node, match Matcher) []Node {
	if root == nil || match == nil {
		return nil
	}
	var out []Node
	var walk func(Node)
	walk = func(n Node) {
		for _, child := range n.Children() {
			if child.Focusable() && match(child) {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(root)
	return out
}

// IndexOf returns the position of n in items, or -1 if absent.
func IndexOf(items []Node, n Node) int {
	for i, item := range items {
		if item == n {
			return i
		}
	}
	return -1
}

// NextItem returns the item at offset steps from current among root's
// matching descendants. An absent current behaves as index 0 before the
// offset is applied. The computed index clamps to [0, len]: the upper bound
// is deliberately one past the last item, so stepping forward from the final
// item lands out of range and returns nil rather than re-clamping onto the
// same item. Callers treat nil as "leave focus where it is".
func NextItem(root Node, match Matcher, current Node, offset int) Node {
	items := Items(root, match)
	if len(items) == 0 {
		return nil
	}

	index := IndexOf(items, current) + offset
	if index < 0 {
		index = 0
	}
	if index > len(items) {
		index = len(items)
	}
	if index == len(items) {
		return nil
	}
	return items[index]
}

// HasMenuRole reports whether root explicitly carries the menu role. Plain
// panels without it should not receive intrusive focus management.
func HasMenuRole(root Node) bool {
	return root != nil && root.Role() == MenuRole
}

// FocusFirst focuses the first matching item under root via the scope and
// returns it, or nil when there is nothing to focus.
func FocusFirst(scope *Scope, root Node, match Matcher) Node {
	items := Items(root, match)
	if len(items) == 0 {
		return nil
	}
	scope.Focus(items[0])
	return items[0]
}
