package contract

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Signature returns the canonical signature of an entry, e.g.
// "transfer(address,uint256)". Tuple parameters are expanded to their
// component types.
func (e ABIEntry) Signature() string {
	return e.Name + "(" + joinTypes(e.Inputs) + ")"
}

// Selector returns the 4-byte function selector as 0x-prefixed hex.
func (e ABIEntry) Selector() string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(e.Signature()))
	return "0x" + hex.EncodeToString(h.Sum(nil)[:4])
}

func joinTypes(params []ABIParam) string {
	types := make([]string, len(params))
	for i, p := range params {
		types[i] = canonicalType(p)
	}
	return strings.Join(types, ",")
}

// canonicalType rewrites "tuple", "tuple[]", "tuple[2][]" ... into the
// parenthesised component list followed by the array suffix.
func canonicalType(p ABIParam) string {
	if !strings.HasPrefix(p.Type, "tuple") {
		return p.Type
	}
	return "(" + joinTypes(p.Components) + ")" + strings.TrimPrefix(p.Type, "tuple")
}

// FormatParams returns a comma-separated string of "type name" pairs.
func FormatParams(params []ABIParam) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if p.Name != "" {
			parts[i] = canonicalType(p) + " " + p.Name
		} else {
			parts[i] = canonicalType(p)
		}
	}
	return strings.Join(parts, ", ")
}

// FormatOutputs returns a comma-separated list of output types.
func FormatOutputs(params []ABIParam) string {
	return strings.ReplaceAll(joinTypes(params), ",", ", ")
}
