package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/quantumauth-io/wallet-data-maker/internal/utils"
	"github.com/quantumauth-io/wallet-data-maker/internal/wallet"
)

const indent = "  "

// WriteSignerTree prints signer -> account -> chain -> asset, one level per indent.
func WriteSignerTree(w io.Writer, signers []wallet.Signer) error {
	var b strings.Builder
	for _, s := range signers {
		b.WriteString(s.Name + "\n")
		for _, a := range s.Accounts {
			b.WriteString(indent + a.Name + "\n")
			for _, c := range a.Chains {
				b.WriteString(strings.Repeat(indent, 2) + c.Name + "\n")
				for _, asset := range c.Assets {
					fmt.Fprintf(&b, "%s%s: %s\n", strings.Repeat(indent, 3), asset.Name, utils.FormatAmount(asset.Amount))
				}
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteChainTable prints the chain-based pivot as a table, one row per asset.
func WriteChainTable(w io.Writer, signers []wallet.Signer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Chain", "Signer", "Account", "Asset", "Amount"})
	table.SetAutoWrapText(false)
	// Only the chain column groups rows; signer and account cells repeat per row.
	table.SetAutoMergeCellsByColumnIndex([]int{0})

	for _, ch := range wallet.ByChain(signers) {
		for _, h := range ch.Holdings {
			for _, asset := range h.Assets {
				table.Append([]string{ch.Chain, h.Signer, h.Account, asset.Name, utils.FormatAmount(asset.Amount)})
			}
		}
	}

	table.Render()
	return nil
}
