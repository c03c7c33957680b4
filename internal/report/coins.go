// Package report renders a wallet dataset for humans: the flat coins.txt
// listing and the signer- and chain-based hierarchy views.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/quantumauth-io/wallet-data-maker/internal/constants"
	"github.com/quantumauth-io/wallet-data-maker/internal/securefile"
	"github.com/quantumauth-io/wallet-data-maker/internal/utils"
	"github.com/quantumauth-io/wallet-data-maker/internal/wallet"
	"github.com/spf13/afero"
)

// WriteCoins writes one block per chain:
//
//	Signer: Signer1
//	Account: Account1
//	Chain: Ethereum
//	  ETH: 5.2
func WriteCoins(w io.Writer, signers []wallet.Signer) error {
	var b strings.Builder
	for _, s := range signers {
		for _, a := range s.Accounts {
			for _, c := range a.Chains {
				fmt.Fprintf(&b, "Signer: %s\n", s.Name)
				fmt.Fprintf(&b, "Account: %s\n", a.Name)
				fmt.Fprintf(&b, "Chain: %s\n", c.Name)
				for _, asset := range c.Assets {
					fmt.Fprintf(&b, "  %s: %s\n", asset.Name, utils.FormatAmount(asset.Amount))
				}
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCoinsFile writes the coins listing to path, replacing any previous report.
func WriteCoinsFile(fs afero.Fs, path string, signers []wallet.Signer) error {
	var b strings.Builder
	if err := WriteCoins(&b, signers); err != nil {
		return err
	}
	return securefile.AtomicWriteFile(fs, path, []byte(b.String()), constants.FilePerm)
}
