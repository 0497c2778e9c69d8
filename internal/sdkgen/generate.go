package sdkgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/Mohsinsiddi/w3sdk/internal/contract"
)

// Generate classifies the ABI once and renders the source module and README
// from the same classification.
func Generate(req Request) (*Result, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cls, err := contract.Classify(req.ABI)
	if err != nil {
		return nil, err
	}

	src, err := SynthesizeSource(req, cls)
	if err != nil {
		return nil, err
	}

	return &Result{
		Request:      req,
		Methods:      cls,
		SourceModule: src,
		Readme:       SynthesizeDocs(req, cls),
	}, nil
}

// moduleData feeds the source templates. Every string field is already a
// literal in the target language; identifiers come from a Classification
// and have been validated there.
type moduleData struct {
	ClassName string
	Address   string
	RPCURL    string
	ABI       string
	Read      []contract.Method
	Write     []contract.Method
}

// SynthesizeSource renders the client module for req.Language. req must be
// normalized and cls must come from req.ABI.
func SynthesizeSource(req Request, cls *contract.Classification) (string, error) {
	tmpl, ok := moduleTemplates[req.Language]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, req.Language)
	}

	abiJSON, err := contract.MarshalABI(req.ABI, "")
	if err != nil {
		return "", fmt.Errorf("encoding ABI literal: %w", err)
	}

	data := moduleData{
		ClassName: req.ClassName,
		Address:   quote(req.ContractAddress),
		RPCURL:    "undefined",
		ABI:       string(abiJSON),
		Read:      cls.Read,
		Write:     cls.Write,
	}
	if req.RPCURL != "" {
		data.RPCURL = quote(req.RPCURL)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s module: %w", req.Language, err)
	}
	return buf.String(), nil
}

// quote returns s as a double-quoted string literal valid in JSON,
// JavaScript and TypeScript.
func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// commentSafe drops anything that could terminate or corrupt a line comment.
func commentSafe(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c < 0x20 || c > 0x7e {
			out[i] = '?'
		}
	}
	return string(out)
}

var templateFuncs = template.FuncMap{
	"comment": commentSafe,
}

var moduleTemplates = map[Language]*template.Template{
	JavaScript: template.Must(template.New("javascript").Funcs(templateFuncs).Parse(jsModule)),
	TypeScript: template.Must(template.New("typescript").Funcs(templateFuncs).Parse(tsModule)),
}
