package param

import "strings"

// QualifiedName joins the non-empty name components with "_". It implements
// the hierarchical naming rule: an outer context name, a node's intrinsic
// name, and a slot key combine into one globally unique identifier, e.g.
// QualifiedName("sig", "", "a") == "sig_a".
func QualifiedName(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "_")
}
