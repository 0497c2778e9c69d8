package contract

import "sort"

// Builtin is a standard interface whose ABI ships with the binary, so an SDK
// can be generated for any conforming contract without an ABI file.
// New built-ins register themselves from init() in their own file.
type Builtin struct {
	ID          string     // machine key, e.g. "erc20"
	Name        string     // human label
	Description string     // one-line summary shown in `w3sdk builtins`
	ABI         []ABIEntry // full ABI, ready to use
}

var builtinRegistry = map[string]Builtin{}

// RegisterBuiltin adds a built-in ABI to the global registry.
func RegisterBuiltin(b Builtin) {
	builtinRegistry[b.ID] = b
}

// GetBuiltin returns a built-in by ID. ok is false if not found.
func GetBuiltin(id string) (Builtin, bool) {
	b, ok := builtinRegistry[id]
	return b, ok
}

// AllBuiltins returns all registered built-ins sorted by ID.
func AllBuiltins() []Builtin {
	out := make([]Builtin, 0, len(builtinRegistry))
	for _, b := range builtinRegistry {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
