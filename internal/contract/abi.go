package contract

import (
	"encoding/json"
	"reflect"
)

// Entry kinds that can appear in a contract ABI.
const (
	TypeFunction    = "function"
	TypeEvent       = "event"
	TypeConstructor = "constructor"
	TypeFallback    = "fallback"
	TypeReceive     = "receive"
	TypeError       = "error"
)

// ABIEntry is one ABI entry (function, event, etc.).
//
// An entry decoded from JSON remembers its source bytes, so encoding it again
// reproduces every key of the original document, including ones this package
// does not model. Once a decoded entry's fields are edited the source bytes
// no longer apply and it encodes canonically, dropping the unmodeled keys.
type ABIEntry struct {
	Name            string     `json:"name,omitempty"`
	Type            string     `json:"type"`
	Inputs          []ABIParam `json:"inputs"`
	Outputs         []ABIParam `json:"outputs,omitempty"`
	StateMutability string     `json:"stateMutability,omitempty"`
	Anonymous       bool       `json:"anonymous,omitempty"`

	raw json.RawMessage
}

// ABIParam is a parameter in an ABI entry.
type ABIParam struct {
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	InternalType string     `json:"internalType,omitempty"`
	Components   []ABIParam `json:"components,omitempty"`
	Indexed      bool       `json:"indexed,omitempty"`
}

// plainEntry has ABIEntry's fields without its JSON methods.
type plainEntry ABIEntry

// UnmarshalJSON decodes the entry and keeps a copy of data.
func (e *ABIEntry) UnmarshalJSON(data []byte) error {
	var p plainEntry
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = ABIEntry(p)
	e.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the source bytes for unedited decoded entries and a
// canonical encoding otherwise.
func (e ABIEntry) MarshalJSON() ([]byte, error) {
	if e.matchesRaw() {
		return e.raw, nil
	}
	p := plainEntry(e)
	p.raw = nil
	if p.Inputs == nil && p.Type != TypeFallback && p.Type != TypeReceive {
		p.Inputs = []ABIParam{}
	}
	if p.Outputs == nil && p.Type == TypeFunction {
		p.Outputs = []ABIParam{}
	}
	return json.Marshal(p)
}

func (e ABIEntry) matchesRaw() bool {
	if len(e.raw) == 0 {
		return false
	}
	var src plainEntry
	if err := json.Unmarshal(e.raw, &src); err != nil {
		return false
	}
	cur := plainEntry(e)
	cur.raw = nil
	return reflect.DeepEqual(src, cur)
}

// IsFunction reports whether the entry describes a callable function.
func (e ABIEntry) IsFunction() bool {
	return e.Type == TypeFunction
}

// IsReadFunction returns true if the function is read-only (view/pure).
func (e ABIEntry) IsReadFunction() bool {
	return e.Type == TypeFunction &&
		(e.StateMutability == "view" || e.StateMutability == "pure")
}

// IsWriteFunction returns true if the function modifies state.
func (e ABIEntry) IsWriteFunction() bool {
	return e.Type == TypeFunction &&
		(e.StateMutability == "nonpayable" || e.StateMutability == "payable")
}

// MarshalABI encodes abi as an indented JSON array. prefix is written at the
// start of every line after the first, so the result can be spliced into
// already-indented text.
func MarshalABI(abi []ABIEntry, prefix string) ([]byte, error) {
	if abi == nil {
		abi = []ABIEntry{}
	}
	return json.MarshalIndent(abi, prefix, "  ")
}

// CountFunctions returns the number of "function" type entries in an ABI.
func CountFunctions(abi []ABIEntry) int {
	n := 0
	for _, e := range abi {
		if e.IsFunction() {
			n++
		}
	}
	return n
}
