package ui

import (
	"strings"
	"testing"

	"github.com/Mohsinsiddi/w3sdk/internal/contract"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// KeyValueBlock
// ---------------------------------------------------------------------------

func TestKeyValueBlockContainsTitleAndPairs(t *testing.T) {
	result := KeyValueBlock("Generated", [][2]string{
		{"Class", "TokenSDK"},
		{"Package", "token-sdk"},
	})
	assert.Contains(t, result, "Generated")
	assert.Contains(t, result, "Class")
	assert.Contains(t, result, "TokenSDK")
	assert.Contains(t, result, "token-sdk")
}

func TestKeyValueBlockMultiplePairsPreservesOrder(t *testing.T) {
	result := KeyValueBlock("Config", [][2]string{
		{"First", "AAA"},
		{"Second", "BBB"},
		{"Third", "CCC"},
	})
	idxFirst := strings.Index(result, "First")
	idxSecond := strings.Index(result, "Second")
	idxThird := strings.Index(result, "Third")
	require.Greater(t, idxFirst, -1)
	assert.Less(t, idxFirst, idxSecond, "First should appear before Second")
	assert.Less(t, idxSecond, idxThird, "Second should appear before Third")
}

func TestKeyValueBlockHasBorder(t *testing.T) {
	result := KeyValueBlock("Bordered", [][2]string{{"Key", "Val"}})
	// lipgloss RoundedBorder uses ╭ and ╰ for corners.
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

// ---------------------------------------------------------------------------
// Table
// ---------------------------------------------------------------------------

func TestNewTableCreatesEmptyTable(t *testing.T) {
	tbl := NewTable([]Column{{Title: "Name", Width: 10}, {Title: "Value", Width: 20}})
	assert.Len(t, tbl.Columns, 2)
	assert.Empty(t, tbl.Rows)
	assert.Equal(t, -1, tbl.SelIdx)
}

func TestTableRenderContainsRowData(t *testing.T) {
	tbl := NewTable([]Column{
		{Title: "Chain", Width: 16},
		{Title: "ID", Width: 8},
	})
	tbl.AddRow(Row{"somnia-testnet", "50311"})
	tbl.AddRow(Row{"base", "8453"})

	result := tbl.Render()
	for _, s := range []string{"Chain", "ID", "somnia-testnet", "50311", "base", "8453", "--------"} {
		assert.Contains(t, result, s)
	}
	assert.Less(t, strings.Index(result, "somnia-testnet"), strings.Index(result, "base"))
}

func TestTableRenderRowShorterThanColumns(t *testing.T) {
	tbl := NewTable([]Column{{Title: "A", Width: 5}, {Title: "B", Width: 5}, {Title: "C", Width: 5}})
	tbl.AddRow(Row{"only1"})
	// Should not panic; missing cells render as empty.
	assert.Contains(t, tbl.Render(), "only1")
}

func TestPad(t *testing.T) {
	assert.Equal(t, "hi        ", pad("hi", 10))
	assert.Equal(t, "hello", pad("hello", 5))
	assert.Equal(t, "toolo…", pad("toolongstring", 6))
	assert.Equal(t, 6, lipgloss.Width(pad("0x1234…5678", 6)))
	assert.Equal(t, "    ", pad("", 4))
	assert.Equal(t, "", pad("x", 0))
}

func TestMethodTable(t *testing.T) {
	b, ok := contract.GetBuiltin("erc721")
	require.True(t, ok)
	cls, err := contract.Classify(b.ABI)
	require.NoError(t, err)

	tbl := MethodTable(cls.Write)
	require.Len(t, tbl.Rows, len(cls.Write))
	out := tbl.Render()
	assert.Contains(t, out, "SELECTOR")
	assert.Contains(t, out, "safeTransferFrom_2")
	assert.Contains(t, out, "0xb88d4fde")
}

// ---------------------------------------------------------------------------
// Banner
// ---------------------------------------------------------------------------

func TestBannerContainsBranding(t *testing.T) {
	result := Banner("v0.3.0")
	assert.Contains(t, result, "client SDK")
	assert.Contains(t, result, "v0.3.0")
}
