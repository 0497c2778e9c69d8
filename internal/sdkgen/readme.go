package sdkgen

import (
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/w3sdk/internal/contract"
)

// Placeholders used when the ABI has no function of a kind.
const (
	PlaceholderReadFunction = "someFunction"
	NoReadFunctions         = "_No read functions detected._"
	NoWriteFunctions        = "_No write functions detected._"
	NoWriteExample          = "// No write functions available"
)

// SynthesizeDocs renders the package README. req must be normalized and cls
// must come from req.ABI.
func SynthesizeDocs(req Request, cls *contract.Classification) string {
	var sb strings.Builder
	fence := "```"

	fmt.Fprintf(&sb, "# %s SDK\n\n", req.ClassName)
	fmt.Fprintf(&sb, "Auto-generated SDK for interacting with your smart contract at **%s**.\n\n", req.ContractAddress)

	sb.WriteString("## 📦 Installation\n\n")
	sb.WriteString(fence + "bash\n")
	fmt.Fprintf(&sb, "npm install %s\n", req.PackageName)
	sb.WriteString("# or\n")
	fmt.Fprintf(&sb, "yarn add %s\n", req.PackageName)
	sb.WriteString(fence + "\n\n")

	sb.WriteString("## 🚀 Quick Start\n\n")
	sb.WriteString(fence + req.Language.FenceTag() + "\n")
	fmt.Fprintf(&sb, "import { %s } from %s;\n", req.ClassName, quote(req.PackageName))
	fmt.Fprintf(&sb, "import { %s } from \"viem/chains\";\n\n", req.Chain.ViemImport)
	fmt.Fprintf(&sb, "const sdk = new %s({\n", req.ClassName)
	if req.RPCURL != "" {
		fmt.Fprintf(&sb, "  chain: %s,\n", req.Chain.ViemImport)
		fmt.Fprintf(&sb, "  rpcUrl: %s\n", quote(req.RPCURL))
	} else {
		fmt.Fprintf(&sb, "  chain: %s\n", req.Chain.ViemImport)
	}
	sb.WriteString("});\n\n")
	sb.WriteString("// Connect wallet (if you need write operations)\n")
	sb.WriteString("await sdk.connectWallet(window.ethereum);\n\n")

	readFn := PlaceholderReadFunction
	if len(cls.Read) > 0 {
		readFn = cls.Read[0].Ident
	}
	sb.WriteString("// Example: Read function\n")
	fmt.Fprintf(&sb, "const value = await sdk.read.%s();\n\n", readFn)

	sb.WriteString("// Example: Write function\n")
	if len(cls.Write) > 0 {
		fmt.Fprintf(&sb, "await sdk.write.%s(/* params */);\n", cls.Write[0].Ident)
	} else {
		sb.WriteString(NoWriteExample + "\n")
	}
	sb.WriteString(fence + "\n\n")

	sb.WriteString("## 🔍 Available Read Functions\n")
	writeMethodList(&sb, cls.Read, NoReadFunctions)
	sb.WriteString("\n")

	sb.WriteString("## ✏️ Available Write Functions\n")
	writeMethodList(&sb, cls.Write, NoWriteFunctions)

	if len(cls.Write) > 0 {
		sb.WriteString("\n## ⚠️ Errors\n\n")
		sb.WriteString("Write functions throw `WalletNotConnectedError` (\"Wallet not connected\") until `connectWallet` has been called.\n")
	}

	return sb.String()
}

func writeMethodList(sb *strings.Builder, methods []contract.Method, empty string) {
	if len(methods) == 0 {
		sb.WriteString(empty + "\n")
		return
	}
	for _, m := range methods {
		if m.Overloaded() {
			fmt.Fprintf(sb, "- `%s()` → `%s`\n", m.Ident, m.Signature)
			continue
		}
		fmt.Fprintf(sb, "- `%s()`\n", m.Ident)
	}
}
