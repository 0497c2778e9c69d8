package contract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseABIValid(t *testing.T) {
	data := `[
		{"name":"balanceOf","type":"function","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
		{"name":"transfer","type":"function","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"}
	]`

	abi, err := ParseABI([]byte(data))
	require.NoError(t, err)
	assert.Len(t, abi, 2)
	assert.Equal(t, "balanceOf", abi[0].Name)
	assert.Equal(t, "function", abi[0].Type)
	assert.Len(t, abi[0].Inputs, 1)
	assert.Len(t, abi[0].Outputs, 1)
	assert.Equal(t, "view", abi[0].StateMutability)
	assert.Equal(t, "transfer", abi[1].Name)
	assert.Len(t, abi[1].Inputs, 2)
}

func TestParseABIInvalidJSON(t *testing.T) {
	_, err := ParseABI([]byte("{not valid json"))
	assert.Error(t, err)
}

func TestParseABIEmptyArray(t *testing.T) {
	abi, err := ParseABI([]byte("[]"))
	require.NoError(t, err)
	assert.Empty(t, abi)
}

func TestParseABIMinimalEntry(t *testing.T) {
	abi, err := ParseABI([]byte(`[{"name":"foo","type":"function"}]`))
	require.NoError(t, err)
	assert.Len(t, abi, 1)
	assert.Equal(t, "foo", abi[0].Name)
	assert.Empty(t, abi[0].Inputs)
	assert.Empty(t, abi[0].StateMutability)
}

func TestParseABINotArray(t *testing.T) {
	_, err := ParseABI([]byte(`{"name":"foo"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON object")
}

func TestParseABIStringFromExplorer(t *testing.T) {
	abi, err := ParseABIString(`[{"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"}]`)
	require.NoError(t, err)
	require.Len(t, abi, 1)
	assert.True(t, abi[0].IsReadFunction())
}

func TestLoadFromFileValid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abi.json")

	abiJSON := `[
		{"name":"name","type":"function","inputs":[],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"},
		{"name":"symbol","type":"function","inputs":[],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(abiJSON), 0o644))

	abi, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, abi, 2)
	assert.Equal(t, "name", abi[0].Name)
	assert.Equal(t, "symbol", abi[1].Name)
}

func TestLoadFromFileNotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path/abi.json")
	assert.Error(t, err)
}

func TestLoadFromArtifactRawArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abi.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"totalSupply","type":"function","stateMutability":"view"}]`), 0o644))

	abi, err := LoadFromArtifact(path)
	require.NoError(t, err)
	require.Len(t, abi, 1)
	assert.Equal(t, "totalSupply", abi[0].Name)
}

func TestLoadFromArtifactHardhat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Token.json")
	artifact := `{"contractName":"Token","abi":[{"name":"mint","type":"function","stateMutability":"nonpayable"}],"bytecode":"0x6080"}`
	require.NoError(t, os.WriteFile(path, []byte(artifact), 0o644))

	abi, err := LoadFromArtifact(path)
	require.NoError(t, err)
	require.Len(t, abi, 1)
	assert.True(t, abi[0].IsWriteFunction())
}

func TestLoadFromArtifactEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := LoadFromArtifact(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadFromArtifactUnrecognisedEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "odd.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"type":"something"}]`), 0o644))

	_, err := LoadFromArtifact(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none are functions or events")
}

func TestLoadArtifactFullPrefersDeployedBytecode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact.json")

	artifact := map[string]interface{}{
		"abi":              []map[string]interface{}{{"name": "foo", "type": "function", "stateMutability": "view"}},
		"bytecode":         "0xaabbcc",
		"deployedBytecode": "0xddeeff",
	}
	data, err := json.Marshal(artifact)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	result, err := LoadArtifactFull(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xdd, 0xee, 0xff}, result.Bytecode)
}

func TestLoadArtifactFullFoundryObject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact.json")

	artifact := `{"abi":[{"name":"foo","type":"function","stateMutability":"view"}],"bytecode":{"object":"0x6001"}}`
	require.NoError(t, os.WriteFile(path, []byte(artifact), 0o644))

	result, err := LoadArtifactFull(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x01}, result.Bytecode)
}

func TestLoadArtifactFullRawArrayRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abi.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"foo","type":"function"}]`), 0o644))

	_, err := LoadArtifactFull(path)
	assert.Error(t, err)
}

func TestLoadArtifactFullEmptyBytecode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iface.json")
	artifact := `{"abi":[{"name":"foo","type":"function","stateMutability":"view"}],"bytecode":"0x"}`
	require.NoError(t, os.WriteFile(path, []byte(artifact), 0o644))

	_, err := LoadArtifactFull(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestFetchFromURLSuccess(t *testing.T) {
	abiJSON := `[{"name":"name","type":"function","inputs":[],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"}]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(abiJSON)) //nolint:errcheck
	}))
	defer server.Close()

	f := NewFetcher()
	f.client = server.Client()

	abi, err := f.FetchFromURL(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Len(t, abi, 1)
	assert.Equal(t, "name", abi[0].Name)
}

func TestFetchFromURLArtifact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"abi":[{"name":"ping","type":"function","stateMutability":"pure"}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	f := NewFetcher()
	f.client = server.Client()

	abi, err := f.FetchFromURL(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, abi, 1)
	assert.Equal(t, "ping", abi[0].Name)
}

func TestFetchFromURLInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json")) //nolint:errcheck
	}))
	defer server.Close()

	f := NewFetcher()
	f.client = server.Client()

	_, err := f.FetchFromURL(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestFetchFromURLServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := NewFetcher()
	f.client = server.Client()

	_, err := f.FetchFromURL(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchFromURLConnectionRefused(t *testing.T) {
	f := NewFetcher()

	_, err := f.FetchFromURL(context.Background(), "http://127.0.0.1:1")
	assert.Error(t, err)
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/abi.json"))
	assert.True(t, IsURL("http://localhost:8080/abi"))
	assert.False(t, IsURL("./out/Token.sol/Token.json"))
	assert.False(t, IsURL("ftp://example.com"))
}
