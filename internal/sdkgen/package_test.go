package sdkgen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filePaths(files []File) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths
}

func fileData(t *testing.T, files []File, path string) []byte {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			return f.Data
		}
	}
	t.Fatalf("no file %s in %v", path, filePaths(files))
	return nil
}

func TestFilesJavaScript(t *testing.T) {
	res, err := Generate(tokenRequest(t))
	require.NoError(t, err)

	files, err := res.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"package.json", "index.js", "contracts/TokenSDK.abi.json", "README.md"}, filePaths(files))

	var pkg map[string]interface{}
	require.NoError(t, json.Unmarshal(fileData(t, files, "package.json"), &pkg))
	assert.Equal(t, "token-sdk", pkg["name"])
	assert.Equal(t, DefaultPackageVersion, pkg["version"])
	assert.Equal(t, "module", pkg["type"])
	assert.Equal(t, "index.js", pkg["main"])
	assert.NotContains(t, pkg, "types")
	assert.Equal(t, map[string]interface{}{"viem": viemVersion}, pkg["dependencies"])

	assert.JSONEq(t, tokenABI, string(fileData(t, files, "contracts/TokenSDK.abi.json")))
	assert.Equal(t, res.SourceModule, string(fileData(t, files, "index.js")))
	assert.Equal(t, res.Readme, string(fileData(t, files, "README.md")))
}

func TestFilesTypeScript(t *testing.T) {
	req := tokenRequest(t)
	req.Language = TypeScript
	req.PackageVersion = "0.2.0"
	res, err := Generate(req)
	require.NoError(t, err)

	files, err := res.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"package.json", "index.ts", "contracts/TokenSDK.abi.json", "README.md", "tsconfig.json"}, filePaths(files))

	var pkg struct {
		Version         string            `json:"version"`
		Main            string            `json:"main"`
		Types           string            `json:"types"`
		Scripts         map[string]string `json:"scripts"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	require.NoError(t, json.Unmarshal(fileData(t, files, "package.json"), &pkg))
	assert.Equal(t, "0.2.0", pkg.Version)
	assert.Equal(t, "dist/index.js", pkg.Main)
	assert.Equal(t, "dist/index.d.ts", pkg.Types)
	assert.Equal(t, "tsc", pkg.Scripts["build"])
	assert.Equal(t, typescriptVersion, pkg.DevDependencies["typescript"])

	var tsconfig struct {
		CompilerOptions map[string]interface{} `json:"compilerOptions"`
		Include         []string               `json:"include"`
	}
	require.NoError(t, json.Unmarshal(fileData(t, files, "tsconfig.json"), &tsconfig))
	assert.Equal(t, "dist", tsconfig.CompilerOptions["outDir"])
	assert.Equal(t, true, tsconfig.CompilerOptions["declaration"])
	assert.Equal(t, []string{"index.ts"}, tsconfig.Include)
}

func TestFilesEndWithNewline(t *testing.T) {
	res, err := Generate(tokenRequest(t))
	require.NoError(t, err)
	files, err := res.Files()
	require.NoError(t, err)

	for _, f := range files {
		require.NotEmpty(t, f.Data, f.Path)
		assert.Equal(t, byte('\n'), f.Data[len(f.Data)-1], f.Path)
	}
}
