package contract

// ERC-20 (EIP-20). `w3sdk generate <token> --builtin erc20` builds a client
// for any conforming token.
func init() {
	RegisterBuiltin(Builtin{
		ID:          "erc20",
		Name:        "ERC-20 Fungible Token",
		Description: "EIP-20 token: 6 read, 3 write functions",
		ABI:         erc20ABI,
	})
}

var erc20ABI = []ABIEntry{
	{
		Name: "name", Type: TypeFunction,
		Outputs:         []ABIParam{{Name: "", Type: "string"}},
		StateMutability: "view",
	},
	{
		Name: "symbol", Type: TypeFunction,
		Outputs:         []ABIParam{{Name: "", Type: "string"}},
		StateMutability: "view",
	},
	{
		Name: "decimals", Type: TypeFunction,
		Outputs:         []ABIParam{{Name: "", Type: "uint8"}},
		StateMutability: "view",
	},
	{
		Name: "totalSupply", Type: TypeFunction,
		Outputs:         []ABIParam{{Name: "", Type: "uint256"}},
		StateMutability: "view",
	},
	{
		Name: "balanceOf", Type: TypeFunction,
		Inputs:          []ABIParam{{Name: "account", Type: "address"}},
		Outputs:         []ABIParam{{Name: "", Type: "uint256"}},
		StateMutability: "view",
	},
	{
		Name: "allowance", Type: TypeFunction,
		Inputs:          []ABIParam{{Name: "owner", Type: "address"}, {Name: "spender", Type: "address"}},
		Outputs:         []ABIParam{{Name: "", Type: "uint256"}},
		StateMutability: "view",
	},
	{
		Name: "transfer", Type: TypeFunction,
		Inputs:          []ABIParam{{Name: "to", Type: "address"}, {Name: "value", Type: "uint256"}},
		Outputs:         []ABIParam{{Name: "", Type: "bool"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "approve", Type: TypeFunction,
		Inputs:          []ABIParam{{Name: "spender", Type: "address"}, {Name: "value", Type: "uint256"}},
		Outputs:         []ABIParam{{Name: "", Type: "bool"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "transferFrom", Type: TypeFunction,
		Inputs:          []ABIParam{{Name: "from", Type: "address"}, {Name: "to", Type: "address"}, {Name: "value", Type: "uint256"}},
		Outputs:         []ABIParam{{Name: "", Type: "bool"}},
		StateMutability: "nonpayable",
	},
	{
		Name:   "Transfer",
		Type:   TypeEvent,
		Inputs: []ABIParam{{Name: "from", Type: "address", Indexed: true}, {Name: "to", Type: "address", Indexed: true}, {Name: "value", Type: "uint256"}},
	},
	{
		Name:   "Approval",
		Type:   TypeEvent,
		Inputs: []ABIParam{{Name: "owner", Type: "address", Indexed: true}, {Name: "spender", Type: "address", Indexed: true}, {Name: "value", Type: "uint256"}},
	},
}
