package contract

// ERC-721 (EIP-721) with the metadata extension. The two safeTransferFrom
// overloads are exposed as safeTransferFrom and safeTransferFrom_2.
func init() {
	RegisterBuiltin(Builtin{
		ID:          "erc721",
		Name:        "ERC-721 Non-Fungible Token",
		Description: "EIP-721 NFT with metadata: 8 read, 5 write functions",
		ABI:         erc721ABI,
	})
}

var (
	paramAddr    = ABIParam{Type: "address"}
	paramTokenID = ABIParam{Name: "tokenId", Type: "uint256"}
)

func named(p ABIParam, name string) ABIParam {
	p.Name = name
	return p
}

var erc721ABI = []ABIEntry{
	{Name: "name", Type: TypeFunction, Outputs: []ABIParam{{Type: "string"}}, StateMutability: "view"},
	{Name: "symbol", Type: TypeFunction, Outputs: []ABIParam{{Type: "string"}}, StateMutability: "view"},
	{Name: "tokenURI", Type: TypeFunction, Inputs: []ABIParam{paramTokenID}, Outputs: []ABIParam{{Type: "string"}}, StateMutability: "view"},
	{Name: "balanceOf", Type: TypeFunction, Inputs: []ABIParam{named(paramAddr, "owner")}, Outputs: []ABIParam{{Type: "uint256"}}, StateMutability: "view"},
	{Name: "ownerOf", Type: TypeFunction, Inputs: []ABIParam{paramTokenID}, Outputs: []ABIParam{paramAddr}, StateMutability: "view"},
	{Name: "getApproved", Type: TypeFunction, Inputs: []ABIParam{paramTokenID}, Outputs: []ABIParam{paramAddr}, StateMutability: "view"},
	{Name: "isApprovedForAll", Type: TypeFunction, Inputs: []ABIParam{named(paramAddr, "owner"), named(paramAddr, "operator")}, Outputs: []ABIParam{{Type: "bool"}}, StateMutability: "view"},
	{Name: "supportsInterface", Type: TypeFunction, Inputs: []ABIParam{{Name: "interfaceId", Type: "bytes4"}}, Outputs: []ABIParam{{Type: "bool"}}, StateMutability: "view"},

	{Name: "approve", Type: TypeFunction, Inputs: []ABIParam{named(paramAddr, "to"), paramTokenID}, StateMutability: "nonpayable"},
	{Name: "setApprovalForAll", Type: TypeFunction, Inputs: []ABIParam{named(paramAddr, "operator"), {Name: "approved", Type: "bool"}}, StateMutability: "nonpayable"},
	{Name: "transferFrom", Type: TypeFunction, Inputs: []ABIParam{named(paramAddr, "from"), named(paramAddr, "to"), paramTokenID}, StateMutability: "nonpayable"},
	{Name: "safeTransferFrom", Type: TypeFunction, Inputs: []ABIParam{named(paramAddr, "from"), named(paramAddr, "to"), paramTokenID}, StateMutability: "nonpayable"},
	{Name: "safeTransferFrom", Type: TypeFunction, Inputs: []ABIParam{named(paramAddr, "from"), named(paramAddr, "to"), paramTokenID, {Name: "data", Type: "bytes"}}, StateMutability: "nonpayable"},

	{Name: "Transfer", Type: TypeEvent, Inputs: []ABIParam{
		{Name: "from", Type: "address", Indexed: true}, {Name: "to", Type: "address", Indexed: true}, {Name: "tokenId", Type: "uint256", Indexed: true}}},
	{Name: "Approval", Type: TypeEvent, Inputs: []ABIParam{
		{Name: "owner", Type: "address", Indexed: true}, {Name: "approved", Type: "address", Indexed: true}, {Name: "tokenId", Type: "uint256", Indexed: true}}},
	{Name: "ApprovalForAll", Type: TypeEvent, Inputs: []ABIParam{
		{Name: "owner", Type: "address", Indexed: true}, {Name: "operator", Type: "address", Indexed: true}, {Name: "approved", Type: "bool"}}},
}
