package sdkgen

// The module templates share one shape: the ABI as a literal, a client class
// with an eagerly bound read contract, a write contract that only exists
// after connectWallet, and read/write method tables in ABI order.

const jsModule = `// Code generated by w3sdk. DO NOT EDIT.
import {
  createPublicClient,
  createWalletClient,
  getContract,
  http,
  custom
} from "viem";

export const CONTRACT_ADDRESS = {{.Address}};

export const DEFAULT_RPC_URL = {{.RPCURL}};

export const ABI = {{.ABI}};

/**
 * Thrown by write methods invoked before connectWallet().
 */
export class WalletNotConnectedError extends Error {
  constructor() {
    super("Wallet not connected");
    this.name = "WalletNotConnectedError";
  }
}

/**
 * Auto-generated SDK class for your contract.
 */
export class {{.ClassName}} {
  constructor(config) {
    this.config = config;

    const rpcUrl = config.rpcUrl ?? DEFAULT_RPC_URL;
    this.publicClient = createPublicClient({
      chain: config.chain,
      transport: rpcUrl ? http(rpcUrl) : http()
    });

    this.contract = getContract({
      address: CONTRACT_ADDRESS,
      abi: ABI,
      client: this.publicClient
    });

    this.walletClient = null;
    this.writeContract = null;
  }

  /**
   * Connect a wallet provider for write calls.
   */
  async connectWallet(provider) {
    this.walletClient = createWalletClient({
      chain: this.config.chain,
      transport: custom(provider)
    });

    this.writeContract = getContract({
      address: CONTRACT_ADDRESS,
      abi: ABI,
      client: this.walletClient
    });
  }

  read = {{if not .Read}}{}{{else}}{
{{range .Read}}{{if .Overloaded}}    // {{comment .Signature}}
{{end}}    {{.Ident}}: async (...args) => this.contract.read.{{.Name}}(args),
{{end}}  }{{end}};

  write = {{if not .Write}}{}{{else}}{
{{range .Write}}{{if .Overloaded}}    // {{comment .Signature}}
{{end}}    {{.Ident}}: async (...args) => {
      if (!this.writeContract) throw new WalletNotConnectedError();
      return this.writeContract.write.{{.Name}}(args);
    },
{{end}}  }{{end}};
}
`

const tsModule = `// Code generated by w3sdk. DO NOT EDIT.
import {
  createPublicClient,
  createWalletClient,
  getContract,
  http,
  custom,
  type Chain,
  type EIP1193Provider,
  type PublicClient,
  type WalletClient
} from "viem";

export const CONTRACT_ADDRESS = {{.Address}} as const;

export const DEFAULT_RPC_URL: string | undefined = {{.RPCURL}};

export const ABI = {{.ABI}} as const;

export interface {{.ClassName}}Config {
  chain: Chain;
  rpcUrl?: string;
}

type ContractCall = (args: readonly unknown[]) => Promise<unknown>;
type CallTable = Record<string, ContractCall>;

/**
 * Thrown by write methods invoked before connectWallet().
 */
export class WalletNotConnectedError extends Error {
  constructor() {
    super("Wallet not connected");
    this.name = "WalletNotConnectedError";
  }
}

/**
 * Auto-generated SDK class for your contract.
 */
export class {{.ClassName}} {
  readonly config: {{.ClassName}}Config;
  readonly publicClient: PublicClient;
  walletClient: WalletClient | null = null;

  private readonly contract: { read: CallTable };
  private writeContract: { write: CallTable } | null = null;

  constructor(config: {{.ClassName}}Config) {
    this.config = config;

    const rpcUrl = config.rpcUrl ?? DEFAULT_RPC_URL;
    this.publicClient = createPublicClient({
      chain: config.chain,
      transport: rpcUrl ? http(rpcUrl) : http()
    });

    this.contract = getContract({
      address: CONTRACT_ADDRESS,
      abi: ABI,
      client: this.publicClient
    }) as unknown as { read: CallTable };
  }

  /**
   * Connect a wallet provider for write calls.
   */
  async connectWallet(provider: EIP1193Provider): Promise<void> {
    const walletClient = createWalletClient({
      chain: this.config.chain,
      transport: custom(provider)
    });
    this.walletClient = walletClient;

    this.writeContract = getContract({
      address: CONTRACT_ADDRESS,
      abi: ABI,
      client: walletClient
    }) as unknown as { write: CallTable };
  }

  readonly read = {{if not .Read}}{}{{else}}{
{{range .Read}}{{if .Overloaded}}    // {{comment .Signature}}
{{end}}    {{.Ident}}: async (...args: unknown[]): Promise<unknown> => this.contract.read.{{.Name}}(args),
{{end}}  }{{end}};

  readonly write = {{if not .Write}}{}{{else}}{
{{range .Write}}{{if .Overloaded}}    // {{comment .Signature}}
{{end}}    {{.Ident}}: async (...args: unknown[]): Promise<unknown> => {
      if (!this.writeContract) throw new WalletNotConnectedError();
      return this.writeContract.write.{{.Name}}(args);
    },
{{end}}  }{{end}};
}
`
