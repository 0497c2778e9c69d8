package contract

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Fetcher retrieves ABIs published at a URL.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a new ABI fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchFromURL fetches a raw ABI array or an artifact from any URL.
func (f *Fetcher) FetchFromURL(ctx context.Context, url string) ([]ABIEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching ABI from URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching ABI from URL: HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading ABI response: %w", err)
	}
	return parseAny(body, url)
}

// IsURL reports whether src should be fetched rather than read from disk.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// ParseABI decodes a raw ABI JSON array.
func ParseABI(data []byte) ([]ABIEntry, error) {
	return parseABI(data)
}

// ParseABIString decodes the string form explorers return in their "ABI"
// field.
func ParseABIString(s string) ([]ABIEntry, error) {
	return parseABI([]byte(s))
}

// LoadFromFile loads a raw ABI JSON array from a local file path.
func LoadFromFile(path string) ([]ABIEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ABI file %s: %w", path, err)
	}
	return parseABI(data)
}

// LoadFromArtifact loads an ABI from a local file that is either:
//   - a raw ABI JSON array: [{"type":"function",...}, ...]
//   - a Hardhat/Foundry artifact: {"abi":[...],"bytecode":"0x...",...}
func LoadFromArtifact(path string) ([]ABIEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read ABI file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("ABI file is empty: %s", path)
	}
	return parseAny(data, path)
}

// parseAny accepts an artifact object or a bare array and validates the
// result. src only labels errors.
func parseAny(data []byte, src string) ([]ABIEntry, error) {
	var artifact struct {
		ABI json.RawMessage `json:"abi"`
	}
	if json.Unmarshal(data, &artifact) == nil && len(artifact.ABI) > 1 && artifact.ABI[0] == '[' {
		data = artifact.ABI
	}

	abi, err := parseABI(data)
	if err != nil {
		return nil, err
	}
	if err := validateABI(abi, src); err != nil {
		return nil, err
	}
	return abi, nil
}

func parseABI(data []byte) ([]ABIEntry, error) {
	var abi []ABIEntry
	if err := json.Unmarshal(data, &abi); err != nil {
		data = bytes.TrimSpace(data)
		if len(data) > 0 && data[0] == '{' {
			return nil, fmt.Errorf("file is a JSON object, not an ABI array; a Hardhat/Foundry artifact must have an \"abi\" key")
		}
		return nil, fmt.Errorf("invalid ABI JSON: expected an array of function/event definitions, got parse error: %w", err)
	}
	return abi, nil
}

// ArtifactFull holds both the ABI and the deployment bytecode parsed from an artifact.
type ArtifactFull struct {
	ABI      []ABIEntry
	Bytecode []byte // raw deployment bytecode (no 0x prefix)
}

// LoadArtifactFull loads both the ABI and the deployment bytecode from a
// Hardhat or Foundry artifact JSON file.
func LoadArtifactFull(path string) (*ArtifactFull, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read artifact file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("artifact file is empty: %s", path)
	}

	var raw struct {
		ABI              json.RawMessage `json:"abi"`
		Bytecode         json.RawMessage `json:"bytecode"`
		DeployedBytecode json.RawMessage `json:"deployedBytecode"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid artifact JSON: %w", err)
	}

	if len(raw.ABI) < 2 || raw.ABI[0] != '[' {
		return nil, fmt.Errorf("artifact has no valid \"abi\" array: %s", path)
	}
	abi, err := parseABI(raw.ABI)
	if err != nil {
		return nil, fmt.Errorf("parsing artifact ABI: %w", err)
	}
	if err := validateABI(abi, path); err != nil {
		return nil, err
	}

	code := raw.DeployedBytecode
	if len(code) == 0 {
		code = raw.Bytecode
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("artifact has no bytecode: %s", path)
	}
	bcHex, err := extractBytecodeHex(code)
	if err != nil {
		return nil, fmt.Errorf("extracting bytecode from artifact: %w", err)
	}
	if len(bcHex) == 0 || bcHex == "0x" {
		return nil, fmt.Errorf("artifact bytecode is empty (interface or abstract contract?): %s", path)
	}

	bcBytes, err := hex.DecodeString(strings.TrimPrefix(bcHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode hex in artifact: %w", err)
	}
	return &ArtifactFull{ABI: abi, Bytecode: bcBytes}, nil
}

// extractBytecodeHex handles the two common artifact formats:
//   - Hardhat:  "bytecode": "0x608060..."
//   - Foundry:  "bytecode": {"object": "0x608060..."}
func extractBytecodeHex(raw json.RawMessage) (string, error) {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return strings.TrimSpace(str), nil
	}

	var obj struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Object != "" {
		return strings.TrimSpace(obj.Object), nil
	}

	return "", fmt.Errorf("bytecode field is neither a hex string nor a {\"object\":\"0x...\"} object")
}

// validateABI rejects documents that decode as an array but contain no
// recognisable entries. An empty array is a valid (if useless) ABI.
func validateABI(abi []ABIEntry, src string) error {
	if len(abi) == 0 {
		return nil
	}
	for _, e := range abi {
		if e.Type == TypeFunction || e.Type == TypeEvent || e.Type == TypeConstructor {
			return nil
		}
	}
	return fmt.Errorf("ABI has %d entries but none are functions or events; check the file format: %s", len(abi), src)
}
