// Package sdkgen turns a contract ABI into a self-contained client package:
// a source module exposing every function under a read or write namespace,
// and a README describing it.
//
// Generation is a pure function of the Request. There is no I/O, no clock
// and no randomness, so equal requests always produce byte-identical output
// and may be generated concurrently.
package sdkgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/w3sdk/internal/contract"
)

// Defaults applied to empty Request fields.
const (
	DefaultClassName      = "GeneratedSDK"
	DefaultPackageName    = "generated-sdk"
	DefaultPackageVersion = "1.0.0"
)

var (
	// ErrInvalidClassName is returned when the class name is not a usable identifier.
	ErrInvalidClassName = errors.New("invalid class name")
	// ErrUnsupportedLanguage is returned for languages without an emitter.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrInvalidChain is returned when the chain export is not an identifier.
	ErrInvalidChain = errors.New("invalid chain reference")
	// ErrInvalidPackageName is returned for names npm would refuse to publish.
	ErrInvalidPackageName = errors.New("invalid package name")
)

// Language selects the emitted source dialect.
type Language string

const (
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
)

// Languages lists every supported language in display order.
var Languages = []Language{JavaScript, TypeScript}

// ParseLanguage accepts a language name or its usual short forms.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "javascript", "js":
		return JavaScript, nil
	case "typescript", "ts":
		return TypeScript, nil
	}
	return "", fmt.Errorf("%w: %q (supported: javascript, typescript)", ErrUnsupportedLanguage, s)
}

// Ext is the source file extension for the language.
func (l Language) Ext() string {
	if l == TypeScript {
		return "ts"
	}
	return "js"
}

// FenceTag is the markdown code-fence tag for the language.
func (l Language) FenceTag() string {
	if l == TypeScript {
		return "ts"
	}
	return "js"
}

// ChainRef names the chain the generated client is documented against.
type ChainRef struct {
	Name       string // registry slug, e.g. "somnia-testnet"
	ViemImport string // export from "viem/chains", e.g. "somniaTestnet"
	ID         int64
}

// DefaultChain is Somnia's Shannon testnet.
var DefaultChain = ChainRef{Name: "somnia-testnet", ViemImport: "somniaTestnet", ID: 50311}

// Request is the immutable input to Generate.
type Request struct {
	ABI             []contract.ABIEntry
	ContractAddress string // validated upstream, emitted as an opaque string literal
	ClassName       string
	PackageName     string
	PackageVersion  string
	RPCURL          string // empty: the client falls back to the chain's default transport
	Chain           ChainRef
	Language        Language
}

// Normalize returns a copy of r with defaults filled in.
func (r Request) Normalize() Request {
	r.ClassName = strings.TrimSpace(r.ClassName)
	if r.ClassName == "" {
		r.ClassName = DefaultClassName
	}
	r.PackageName = strings.TrimSpace(r.PackageName)
	if r.PackageName == "" {
		r.PackageName = DefaultPackageName
	}
	if r.PackageVersion == "" {
		r.PackageVersion = DefaultPackageVersion
	}
	if r.Chain.ViemImport == "" {
		r.Chain = DefaultChain
	}
	if r.Language == "" {
		r.Language = JavaScript
	}
	r.RPCURL = strings.TrimSpace(r.RPCURL)
	return r
}

// Validate checks the fields that end up as identifiers or literals in
// emitted code. It expects a normalized request.
func (r Request) Validate() error {
	if _, err := ParseLanguage(string(r.Language)); err != nil {
		return err
	}
	if !contract.IsIdentifier(r.Chain.ViemImport) {
		return fmt.Errorf("%w: %q", ErrInvalidChain, r.Chain.ViemImport)
	}
	if err := ValidateClassName(r.ClassName, r.Language); err != nil {
		return err
	}
	if r.ClassName == r.Chain.ViemImport {
		return fmt.Errorf("%w: %q shadows the chain import", ErrInvalidClassName, r.ClassName)
	}
	return ValidatePackageName(r.PackageName)
}

// ValidateClassName reports whether name can be declared as the client class
// of a module in lang.
func ValidateClassName(name string, lang Language) error {
	if !contract.IsIdentifier(name) || reservedWords[name] {
		return fmt.Errorf("%w: %q is not a valid identifier", ErrInvalidClassName, name)
	}
	if moduleBindings[name] || (lang == TypeScript && tsBindings[name]) {
		return fmt.Errorf("%w: %q is already declared by the generated module", ErrInvalidClassName, name)
	}
	return nil
}

// CheckClassName validates name for every supported language.
func CheckClassName(name string) error {
	for _, lang := range Languages {
		if err := ValidateClassName(name, lang); err != nil {
			return err
		}
	}
	return nil
}

// reservedWords cannot name a class in either emitted language. Modules are
// strict, so eval and arguments are included.
var reservedWords = map[string]bool{
	"any": true, "arguments": true, "await": true, "bigint": true, "boolean": true,
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "eval": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"implements": true, "import": true, "in": true, "instanceof": true,
	"interface": true, "let": true, "never": true, "new": true, "null": true,
	"number": true, "object": true, "package": true, "private": true,
	"protected": true, "public": true, "return": true, "static": true,
	"string": true, "super": true, "switch": true, "symbol": true, "this": true,
	"throw": true, "true": true, "try": true, "typeof": true, "undefined": true,
	"unknown": true, "var": true, "void": true, "while": true, "with": true,
	"yield": true,
}

// moduleBindings are the top-level names every emitted module declares.
var moduleBindings = map[string]bool{
	"ABI": true, "CONTRACT_ADDRESS": true, "DEFAULT_RPC_URL": true,
	"WalletNotConnectedError": true,
	"createPublicClient":      true, "createWalletClient": true, "getContract": true,
	"http": true, "custom": true,
}

// tsBindings are the extra top-level names of the TypeScript module.
var tsBindings = map[string]bool{
	"Chain": true, "EIP1193Provider": true, "PublicClient": true, "WalletClient": true,
	"ContractCall": true, "CallTable": true,
}

// ValidatePackageName checks name against npm's naming rules: an optional
// @scope/ prefix, then lowercase URL-safe characters, at most 214 bytes.
func ValidatePackageName(name string) error {
	if len(name) > 214 {
		return fmt.Errorf("%w: longer than 214 characters", ErrInvalidPackageName)
	}
	rest := name
	if strings.HasPrefix(name, "@") {
		scope, pkg, ok := strings.Cut(name[1:], "/")
		if !ok || !isPackageSegment(scope) {
			return fmt.Errorf("%w: %q has a malformed scope", ErrInvalidPackageName, name)
		}
		rest = pkg
	}
	if !isPackageSegment(rest) || rest[0] == '.' || rest[0] == '_' {
		return fmt.Errorf("%w: %q", ErrInvalidPackageName, name)
	}
	return nil
}

func isPackageSegment(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '-', c == '.', c == '_', c == '~':
		default:
			return false
		}
	}
	return true
}

// Result is the output of Generate.
type Result struct {
	Request      Request // normalized
	Methods      *contract.Classification
	SourceModule string
	Readme       string
}

// SourceFile is the conventional file name of the source module.
func (r *Result) SourceFile() string {
	return "index." + r.Request.Language.Ext()
}
