package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	runtime   = "6080604052348015600f57600080fd5b50"
	metadataA = "a1616101" + "0004"
	metadataB = "a1616102" + "0004"
)

func TestStripMetadata(t *testing.T) {
	assert.Equal(t, runtime, StripMetadata(runtime+metadataA))
	// trailer claims more bytes than exist
	assert.Equal(t, runtime+"ffff", StripMetadata(runtime+"ffff"))
	// section does not start with a CBOR map
	assert.Equal(t, runtime+"01020304"+"0004", StripMetadata(runtime+"01020304"+"0004"))
	assert.Equal(t, "", StripMetadata(""))
}

func TestCodeMatches(t *testing.T) {
	tests := []struct {
		name            string
		local, deployed string
		want            bool
	}{
		{"identical", runtime, runtime, true},
		{"prefix and case", "0x" + runtime, "0X" + "6080604052348015600F57600080FD5B50", true},
		{"metadata differs", "0x" + runtime + metadataA, "0x" + runtime + metadataB, true},
		{"code differs", runtime + "00", runtime + "01", false},
		{"no deployed code", runtime, "0x", false},
		{"both empty", "0x", "0x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeMatches(tt.local, tt.deployed))
		})
	}
}
