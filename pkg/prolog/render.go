package prolog

import (
	"sort"
	"strings"
)

// String renders a solution the way spec §6 describes: only the variables
// at depth 0 — the ones the caller's own query mentioned, never a variable
// introduced by clause expansion — each as "Name = value" with value
// walked to its fixed point under e, sorted by name, comma-joined. An
// empty projection renders as "Yes".
func (e Environment) String() string {
	type binding struct {
		name  string
		value Term
	}

	var bindings []binding
	for v, t := range e.bindings {
		if v.Depth != 0 {
			continue
		}
		bindings = append(bindings, binding{name: v.Name, value: e.Walk(t)})
	}

	if len(bindings) == 0 {
		return "Yes"
	}

	sort.Slice(bindings, func(i, j int) bool { return bindings[i].name < bindings[j].name })

	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.name + " = " + b.value.String()
	}

	return strings.Join(parts, ", ")
}
