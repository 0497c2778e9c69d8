package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes ", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yep\n", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		assert.Equal(t, tt.want, Confirm(strings.NewReader(tt.in), &out, "Overwrite?"), "%q", tt.in)
		assert.Contains(t, out.String(), "Overwrite?")
		assert.Contains(t, out.String(), "[y/N]")
	}
}

func TestSpinnerWritesToWriter(t *testing.T) {
	var out bytes.Buffer
	s := NewSpinner(&out, "fetching ABI")
	s.Start()
	s.StopWithMsg("done")
	assert.Contains(t, out.String(), "fetching ABI")
	assert.True(t, strings.HasSuffix(out.String(), "done\n"))
}
