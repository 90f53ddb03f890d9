package config

const (
	// HardhatNetwork is the in-process chain created for each command
	HardhatNetwork = "hardhat"
	// LocalhostNetwork is a development node listening on the default port
	LocalhostNetwork = "localhost"

	// HardhatChainID is the chain ID development chains report
	HardhatChainID uint64 = 31337
	// DefaultLocalhostRPC is where hardhat node and anvil listen by default
	DefaultLocalhostRPC = "http://127.0.0.1:8545"
)

// DevAccountKeys are the publicly known development keys derived from the
// "test test test test test test test test test test test junk" mnemonic.
// They fund the in-process chain and sign on localhost. Never use them on a live network.
var DevAccountKeys = []string{
	"ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
	"59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d",
	"5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a",
	"7c852118294e51e653712a81e05800f419141751be58f605c371e15141b007a6",
	"47e179ec197488593b187f80a00eb0da91f1b9d0b13f8733639f19c30a34926a",
	"8b3a350cf5c34c9194ca85829a2df0ec3153be0318b5e2d3348e872092edffba",
}
