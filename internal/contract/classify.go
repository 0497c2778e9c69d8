package contract

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedABIEntry is returned when a function that would be generated has
// a name that cannot be used as a method identifier.
var ErrMalformedABIEntry = errors.New("malformed ABI entry")

// MalformedEntryError pinpoints the offending ABI entry.
type MalformedEntryError struct {
	Index  int    // position in the ABI array
	Name   string // name as declared
	Reason string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("%s: entry %d (%q): %s", ErrMalformedABIEntry, e.Index, e.Name, e.Reason)
}

func (e *MalformedEntryError) Unwrap() error { return ErrMalformedABIEntry }

// MethodKind separates calls that need a wallet from those that don't.
type MethodKind string

const (
	KindRead  MethodKind = "read"
	KindWrite MethodKind = "write"
)

// Method describes one generated client method.
type Method struct {
	// Ident is the name the generated client exposes. It equals Name unless
	// Name is overloaded, in which case later overloads get "_<n>" appended.
	Ident      string
	Name       string
	Kind       MethodKind
	Mutability string
	Signature  string
	Selector   string
	Overload   int // 1 for the first declaration of Name, 2 for the next...
	Index      int // position in the ABI array
	Inputs     []ABIParam
	Outputs    []ABIParam
}

// Overloaded reports whether the method was renamed to avoid a collision.
func (m Method) Overloaded() bool { return m.Ident != m.Name }

// Classification is an ABI split into read and write methods, each in ABI
// declaration order.
type Classification struct {
	Read  []Method
	Write []Method
}

// ReadNames returns the identifiers of all read methods.
func (c *Classification) ReadNames() []string { return idents(c.Read) }

// WriteNames returns the identifiers of all write methods.
func (c *Classification) WriteNames() []string { return idents(c.Write) }

// Len returns the total number of methods.
func (c *Classification) Len() int { return len(c.Read) + len(c.Write) }

func idents(ms []Method) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Ident
	}
	return out
}

// Classify walks abi once and sorts every function into read (pure/view) or
// write (nonpayable/payable). Other entry kinds, and functions without a
// state mutability, are skipped.
//
// Overloads are never merged: the first declaration keeps its name and each
// later one is exposed as name_2, name_3, ... skipping any identifier the ABI
// already declares. Numbering is shared by both kinds, so identifiers are
// unique across the whole classification.
//
// A generated function whose name is not an identifier fails the whole ABI
// with a *MalformedEntryError.
func Classify(abi []ABIEntry) (*Classification, error) {
	declared := make(map[string]bool)
	for i, e := range abi {
		if !e.IsReadFunction() && !e.IsWriteFunction() {
			continue
		}
		if err := checkIdentifier(e.Name); err != "" {
			return nil, &MalformedEntryError{Index: i, Name: e.Name, Reason: err}
		}
		declared[e.Name] = true
	}

	cls := &Classification{Read: []Method{}, Write: []Method{}}
	seen := make(map[string]int)
	used := make(map[string]bool)
	for i, e := range abi {
		var kind MethodKind
		switch {
		case e.IsReadFunction():
			kind = KindRead
		case e.IsWriteFunction():
			kind = KindWrite
		default:
			continue
		}

		seen[e.Name]++
		ident := e.Name
		if n := seen[e.Name]; n > 1 {
			for k := n; ; k++ {
				ident = e.Name + "_" + strconv.Itoa(k)
				if !declared[ident] && !used[ident] {
					break
				}
			}
		}
		used[ident] = true

		m := Method{
			Ident:      ident,
			Name:       e.Name,
			Kind:       kind,
			Mutability: e.StateMutability,
			Signature:  e.Signature(),
			Selector:   e.Selector(),
			Overload:   seen[e.Name],
			Index:      i,
			Inputs:     e.Inputs,
			Outputs:    e.Outputs,
		}
		if kind == KindRead {
			cls.Read = append(cls.Read, m)
		} else {
			cls.Write = append(cls.Write, m)
		}
	}
	return cls, nil
}

// IsIdentifier reports whether s is an ASCII identifier: letters, digits and
// underscores, not starting with a digit.
func IsIdentifier(s string) bool {
	return checkIdentifier(s) == ""
}

func checkIdentifier(s string) string {
	if s == "" {
		return "name is empty"
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return "name starts with a digit"
			}
		default:
			return fmt.Sprintf("invalid character %q at offset %d", rune(c), i)
		}
	}
	if s == "__proto__" {
		return "name is reserved"
	}
	return ""
}
