package sdkgen

import (
	"encoding/json"
	"fmt"

	"github.com/Mohsinsiddi/w3sdk/internal/contract"
)

// Dependency ranges written to package.json.
const (
	viemVersion       = "^2.21.0"
	typescriptVersion = "^5.4.0"
)

// File is one file of a generated package, relative to the package root.
type File struct {
	Path string
	Data []byte
}

type packageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Type            string            `json:"type"`
	Main            string            `json:"main"`
	Types           string            `json:"types,omitempty"`
	Files           []string          `json:"files"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// Files lays the result out as an npm package:
//
//	package.json
//	index.js | index.ts
//	contracts/<ClassName>.abi.json
//	README.md
//	tsconfig.json (typescript only)
func (r *Result) Files() ([]File, error) {
	req := r.Request
	abiPath := "contracts/" + req.ClassName + ".abi.json"

	pkg := packageJSON{
		Name:         req.PackageName,
		Version:      req.PackageVersion,
		Description:  fmt.Sprintf("%s client for the contract at %s", req.ClassName, req.ContractAddress),
		Type:         "module",
		Main:         r.SourceFile(),
		Files:        []string{r.SourceFile(), "contracts"},
		Dependencies: map[string]string{"viem": viemVersion},
	}
	if req.Language == TypeScript {
		pkg.Main = "dist/index.js"
		pkg.Types = "dist/index.d.ts"
		pkg.Files = []string{"dist", "contracts"}
		pkg.Scripts = map[string]string{"build": "tsc", "prepublishOnly": "tsc"}
		pkg.DevDependencies = map[string]string{"typescript": typescriptVersion}
	}

	pkgData, err := marshalFile(pkg)
	if err != nil {
		return nil, fmt.Errorf("encoding package.json: %w", err)
	}
	abiData, err := contract.MarshalABI(req.ABI, "")
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", abiPath, err)
	}

	files := []File{
		{Path: "package.json", Data: pkgData},
		{Path: r.SourceFile(), Data: []byte(r.SourceModule)},
		{Path: abiPath, Data: append(abiData, '\n')},
		{Path: "README.md", Data: []byte(r.Readme)},
	}

	if req.Language == TypeScript {
		tsconfig := map[string]any{
			"compilerOptions": map[string]any{
				"target":           "ES2022",
				"module":           "ES2022",
				"moduleResolution": "bundler",
				"declaration":      true,
				"outDir":           "dist",
				"strict":           true,
				"skipLibCheck":     true,
			},
			"include": []string{"index.ts"},
		}
		data, err := marshalFile(tsconfig)
		if err != nil {
			return nil, fmt.Errorf("encoding tsconfig.json: %w", err)
		}
		files = append(files, File{Path: "tsconfig.json", Data: data})
	}
	return files, nil
}

func marshalFile(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
