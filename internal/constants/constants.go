package constants

const (
	AppName        = "wallet-data-maker"
	ConfigFileName = "wallet-data-maker"

	DefaultBaseDir   = "wallet_data"
	DefaultCoinsFile = "coins.txt"

	SignersFile  = "signers.yaml"
	AccountsFile = "accounts.yaml"
	ChainsFile   = "chains.yaml"
	ChainFileExt = ".yaml"

	FilePerm      = 0o644
	DirectoryPerm = 0o755

	// YAML block indentation for every written file.
	YAMLIndent = 2
)
