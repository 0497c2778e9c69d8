package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Mohsinsiddi/w3sdk/internal/contract"
	"github.com/Mohsinsiddi/w3sdk/internal/log"
)

// ErrNoExplorerAPI is returned for chains without an Etherscan-compatible API.
var ErrNoExplorerAPI = errors.New("no explorer API configured for chain")

// unverifiedABI is what Etherscan and BlockScout put in the ABI field of an
// unverified contract.
const unverifiedABI = "Contract source code not verified"

// explorerResponse is the raw Etherscan/BlockScout-compatible API envelope.
// Result is kept as RawMessage because a failed call returns a plain string
// (e.g. "NOTOK" or an error message) while a successful call returns a JSON value.
// Proxy calls answer with a JSON-RPC envelope instead, hence Error.
type explorerResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// contractSourceResult is the inner object from getsourcecode.
type contractSourceResult struct {
	SourceCode      string `json:"SourceCode"`
	ABI             string `json:"ABI"`
	ContractName    string `json:"ContractName"`
	CompilerVersion string `json:"CompilerVersion"`
}

// Verification is the outcome of a source-verification lookup.
type Verification struct {
	Verified        bool
	ContractAddress string
	ContractName    string
	CompilerVersion string
	SourceCode      string
	ABI             []contract.ABIEntry
}

// Explorer talks to an Etherscan/BlockScout-compatible block explorer API.
// apiKey may be empty (free BlockScout tier).
type Explorer struct {
	apiURL string
	apiKey string
	client *http.Client
}

// NewExplorer returns an explorer client for apiURL.
func NewExplorer(apiURL, apiKey string) *Explorer {
	return &Explorer{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 12 * time.Second},
	}
}

// ExplorerFor returns an explorer client for c, or ErrNoExplorerAPI.
func ExplorerFor(c *Chain, apiKey string) (*Explorer, error) {
	if c.ExplorerAPI == "" {
		return nil, fmt.Errorf("%w %s", ErrNoExplorerAPI, c.Name)
	}
	return NewExplorer(c.ExplorerAPI, apiKey), nil
}

// Verify looks up the verified source of address. An unverified contract is
// reported as Verified=false without an error.
func (e *Explorer) Verify(ctx context.Context, address string) (*Verification, error) {
	env, err := e.get(ctx, url.Values{
		"module":  {"contract"},
		"action":  {"getsourcecode"},
		"address": {address},
	})
	if err != nil {
		return nil, err
	}

	out := &Verification{ContractAddress: address}
	if env.Status != "1" {
		msg := envelopeMessage(env)
		if strings.Contains(strings.ToLower(msg), "not verified") {
			return out, nil
		}
		return nil, fmt.Errorf("explorer API: %s", msg)
	}

	var results []contractSourceResult
	if err := json.Unmarshal(env.Result, &results); err != nil {
		return nil, fmt.Errorf("parsing getsourcecode result: %w", err)
	}
	if len(results) == 0 {
		return out, nil
	}
	r := results[0]
	if r.ABI == "" || r.ABI == unverifiedABI {
		log.L(ctx).WithField("contract", address).Debug("contract not verified")
		return out, nil
	}

	abi, err := contract.ParseABIString(r.ABI)
	if err != nil {
		return nil, fmt.Errorf("explorer returned an unusable ABI: %w", err)
	}
	out.Verified = true
	out.ContractName = r.ContractName
	out.CompilerVersion = r.CompilerVersion
	out.SourceCode = r.SourceCode
	out.ABI = abi
	log.L(ctx).WithField("contract", address).WithField("name", r.ContractName).Debug("contract verified")
	return out, nil
}

// DeployedBytecode returns the lower-cased runtime bytecode at address via
// the explorer's eth_getCode proxy.
func (e *Explorer) DeployedBytecode(ctx context.Context, address string) (string, error) {
	env, err := e.get(ctx, url.Values{
		"module":  {"proxy"},
		"action":  {"eth_getCode"},
		"address": {address},
		"tag":     {"latest"},
	})
	if err != nil {
		return "", err
	}
	if env.Error != nil {
		return "", fmt.Errorf("explorer RPC error %d: %s", env.Error.Code, env.Error.Message)
	}

	var code string
	if err := json.Unmarshal(env.Result, &code); err != nil {
		return "", fmt.Errorf("parsing eth_getCode result: %w", err)
	}
	if env.Status == "0" || !strings.HasPrefix(code, "0x") {
		return "", fmt.Errorf("explorer API: %s", envelopeMessage(env))
	}
	return strings.ToLower(code), nil
}

func (e *Explorer) get(ctx context.Context, params url.Values) (*explorerResponse, error) {
	if e.apiKey != "" {
		params.Set("apikey", e.apiKey)
	}
	// Use "&" when apiURL already contains a "?" (e.g. Etherscan V2 includes ?chainid=X).
	sep := "?"
	if strings.Contains(e.apiURL, "?") {
		sep = "&"
	}
	endpoint := e.apiURL + sep + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	log.L(ctx).WithField("module", params.Get("module")).WithField("action", params.Get("action")).Debug("explorer request")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("explorer request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("explorer request failed: HTTP %d", resp.StatusCode)
	}

	var env explorerResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("parsing explorer response: %w", err)
	}
	return &env, nil
}

// envelopeMessage prefers the plain-string result of a failed call over the
// generic message field.
func envelopeMessage(env *explorerResponse) string {
	var msg string
	if err := json.Unmarshal(env.Result, &msg); err == nil && msg != "" {
		return msg
	}
	return env.Message
}
