package lint

import "fmt"

// FindOrderIssues reports properties that appear after a property ranked
// later in the canonical order. Each offending property is reported once,
// against the first earlier property it conflicts with.
func FindOrderIssues(props []Property, conv Conventions) []Issue {
	conv = conv.withDefaults()

	var known []Property
	present := make(map[string]bool, len(props))
	for _, p := range props {
		present[p.Name] = true
		if conv.rank(p.Name) >= 0 {
			known = append(known, p)
		}
	}
	if len(known) == 0 {
		return nil
	}

	var expected []string
	for _, name := range conv.PropertyOrder {
		if present[name] {
			expected = append(expected, name)
		}
	}
	if inOrder(known, expected) {
		return nil
	}

	var issues []Issue
	seen := make(map[string]bool)
	for i, p := range known {
		if seen[p.Name] {
			continue
		}
		r := conv.rank(p.Name)
		for _, before := range known[:i] {
			if conv.rank(before.Name) > r {
				seen[p.Name] = true
				issues = append(issues, Issue{
					Category: CategoryOrder,
					Message:  fmt.Sprintf(":%d", p.Line),
					Fix:      fmt.Sprintf("move `%s` before `%s`", p.Name, before.Name),
				})
				break
			}
		}
	}
	return issues
}

func inOrder(actual []Property, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i := range actual {
		if actual[i].Name != expected[i] {
			return false
		}
	}
	return true
}
