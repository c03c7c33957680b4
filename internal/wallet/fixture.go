package wallet

// Fixture returns the sample dataset written by the exporter.
// A fresh copy is built on every call so callers may mutate it freely.
func Fixture() []Signer {
	return []Signer{
		{
			Name: "Signer1",
			Accounts: []Account{
				{
					Name: "Account1",
					Chains: []Chain{
						{
							Name: "Ethereum",
							Assets: []Asset{
								{Name: "ETH", Amount: 5.2},
								{Name: "USDT", Amount: 1000.0},
							},
						},
						{
							Name: "Polygon",
							Assets: []Asset{
								{Name: "MATIC", Amount: 150.5},
								{Name: "USDC", Amount: 500.0},
							},
						},
					},
				},
				{
					Name: "Account2",
					Chains: []Chain{
						{
							Name: "Binance",
							Assets: []Asset{
								{Name: "BNB", Amount: 10.0},
								{Name: "BUSD", Amount: 2000.0},
							},
						},
					},
				},
			},
		},
		{
			Name: "Signer2",
			Accounts: []Account{
				{
					Name: "Account3",
					Chains: []Chain{
						{
							Name: "Solana",
							Assets: []Asset{
								{Name: "SOL", Amount: 75.3},
								{Name: "SRM", Amount: 300.0},
							},
						},
					},
				},
			},
		},
	}
}
