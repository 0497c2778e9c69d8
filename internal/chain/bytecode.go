package chain

import (
	"encoding/hex"
	"strings"
)

// NormalizeCode lower-cases hex bytecode and drops the 0x prefix and
// surrounding whitespace.
func NormalizeCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	return strings.TrimPrefix(code, "0x")
}

// StripMetadata removes the CBOR metadata section solc appends to runtime
// bytecode. The last two bytes hold the section length; code without a
// plausible trailer is returned unchanged. Input must be normalized.
func StripMetadata(code string) string {
	if len(code) < 4 || len(code)%2 != 0 {
		return code
	}
	trailer, err := hex.DecodeString(code[len(code)-4:])
	if err != nil {
		return code
	}
	n := int(trailer[0])<<8 | int(trailer[1])
	end := len(code) - 4
	start := end - n*2
	if n == 0 || start < 0 {
		return code
	}
	// CBOR maps start with major type 5 (0xa0-0xbf).
	head, err := hex.DecodeString(code[start : start+2])
	if err != nil || head[0]&0xe0 != 0xa0 {
		return code
	}
	return code[:start]
}

// CodeMatches reports whether a locally compiled runtime bytecode equals
// what is deployed, ignoring the 0x prefix, case and the metadata section.
func CodeMatches(local, deployed string) bool {
	l := StripMetadata(NormalizeCode(local))
	d := StripMetadata(NormalizeCode(deployed))
	return l != "" && l == d
}
