package contract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestABIEntryKeepsUnknownKeys(t *testing.T) {
	src := `[{"type":"function","name":"swap","inputs":[{"name":"p","type":"tuple","internalType":"struct Params","components":[{"name":"a","type":"address"},{"name":"b","type":"uint24"}]}],"outputs":[],"stateMutability":"payable","gas":12345}]`

	abi, err := ParseABI([]byte(src))
	require.NoError(t, err)

	out, err := json.Marshal(abi)
	require.NoError(t, err)
	assert.JSONEq(t, src, string(out))
}

func TestABIEntryEditedAfterDecode(t *testing.T) {
	src := `[{"type":"function","name":"mint","inputs":[],"outputs":[],"stateMutability":"payable","gas":1}]`
	abi, err := ParseABI([]byte(src))
	require.NoError(t, err)

	abi[0].Name = "mintTo"
	abi[0].StateMutability = "nonpayable"

	out, err := json.Marshal(abi[0])
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"name":"mintTo","type":"function","inputs":[],"outputs":[],"stateMutability":"nonpayable"}`,
		string(out))

	cls, err := Classify(abi)
	require.NoError(t, err)
	require.Len(t, cls.Write, 1)
	assert.Equal(t, "mintTo", cls.Write[0].Name)

	abi[0].Inputs = append(abi[0].Inputs, ABIParam{Name: "to", Type: "address"})
	out, err = json.Marshal(abi[0])
	require.NoError(t, err)
	assert.Contains(t, string(out), `"to"`)
}

func TestABIEntryMarshalBuiltInCode(t *testing.T) {
	e := ABIEntry{Name: "totalSupply", Type: TypeFunction, StateMutability: "view",
		Outputs: []ABIParam{{Type: "uint256"}}}

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"name":"totalSupply","type":"function","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"}`,
		string(out))
}

func TestABIEntryMarshalEvent(t *testing.T) {
	e := ABIEntry{Name: "Transfer", Type: TypeEvent,
		Inputs: []ABIParam{{Name: "from", Type: "address", Indexed: true}}}

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"name":"Transfer","type":"event","inputs":[{"name":"from","type":"address","indexed":true}]}`,
		string(out))
}

func TestMarshalABIIndentsWithPrefix(t *testing.T) {
	abi := []ABIEntry{{Name: "f", Type: TypeFunction, StateMutability: "view"}}

	out, err := MarshalABI(abi, "    ")
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n      {\n")
	assert.Contains(t, string(out), "\n    ]")
}

func TestMarshalABINil(t *testing.T) {
	out, err := MarshalABI(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestSignatureExpandsTuples(t *testing.T) {
	e := ABIEntry{
		Name: "execute",
		Type: TypeFunction,
		Inputs: []ABIParam{
			{Type: "tuple[]", Components: []ABIParam{{Type: "address"}, {Type: "bytes"}}},
			{Type: "uint256"},
		},
	}
	assert.Equal(t, "execute((address,bytes)[],uint256)", e.Signature())
}

func TestFunctionSelector(t *testing.T) {
	tests := []struct {
		name     string
		fn       ABIEntry
		expected string
	}{
		{"balanceOf(address)", ABIEntry{Name: "balanceOf", Inputs: []ABIParam{{Type: "address"}}}, "0x70a08231"},
		{"transfer(address,uint256)", ABIEntry{Name: "transfer", Inputs: []ABIParam{{Type: "address"}, {Type: "uint256"}}}, "0xa9059cbb"},
		{"name()", ABIEntry{Name: "name"}, "0x06fdde03"},
		{"totalSupply()", ABIEntry{Name: "totalSupply"}, "0x18160ddd"},
		{"allowance(address,address)", ABIEntry{Name: "allowance", Inputs: []ABIParam{{Type: "address"}, {Type: "address"}}}, "0xdd62ed3e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fn.Selector())
		})
	}
}

func TestFormatParams(t *testing.T) {
	params := []ABIParam{{Name: "to", Type: "address"}, {Type: "uint256"}}
	assert.Equal(t, "address to, uint256", FormatParams(params))
	assert.Equal(t, "address, uint256", FormatOutputs(params))
	assert.Equal(t, "", FormatOutputs(nil))
}

func TestCountFunctions(t *testing.T) {
	abi := []ABIEntry{{Type: TypeFunction}, {Type: TypeEvent}, {Type: TypeFunction}}
	assert.Equal(t, 2, CountFunctions(abi))
}
