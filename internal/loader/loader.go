// Package loader reads a wallet tree written by the exporter back into memory.
package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/quantumauth-io/wallet-data-maker/internal/constants"
	"github.com/quantumauth-io/wallet-data-maker/internal/exporter"
	"github.com/quantumauth-io/wallet-data-maker/internal/wallet"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// ErrChainNameMismatch is returned when a chain file's name field disagrees
// with the chains.yaml entry that points at it.
var ErrChainNameMismatch = errors.New("chain name does not match index entry")

// Load walks the index files under baseDir in order and rebuilds the dataset.
func Load(ctx context.Context, fs afero.Fs, baseDir string) ([]wallet.Signer, error) {
	var si wallet.SignersIndex
	if err := readYAML(ctx, fs, filepath.Join(baseDir, constants.SignersFile), &si); err != nil {
		return nil, err
	}

	signers := make([]wallet.Signer, 0, len(si.Signers))
	for _, name := range si.Signers {
		s, err := loadSigner(ctx, fs, filepath.Join(baseDir, name), name)
		if err != nil {
			return nil, err
		}
		signers = append(signers, s)
	}
	return signers, nil
}

func loadSigner(ctx context.Context, fs afero.Fs, dir, name string) (wallet.Signer, error) {
	var ai wallet.AccountsIndex
	if err := readYAML(ctx, fs, filepath.Join(dir, constants.AccountsFile), &ai); err != nil {
		return wallet.Signer{}, err
	}

	s := wallet.Signer{Name: name, Accounts: make([]wallet.Account, 0, len(ai.Accounts))}
	for _, accName := range ai.Accounts {
		a, err := loadAccount(ctx, fs, filepath.Join(dir, accName), accName)
		if err != nil {
			return wallet.Signer{}, err
		}
		s.Accounts = append(s.Accounts, a)
	}
	return s, nil
}

func loadAccount(ctx context.Context, fs afero.Fs, dir, name string) (wallet.Account, error) {
	var ci wallet.ChainsIndex
	if err := readYAML(ctx, fs, filepath.Join(dir, constants.ChainsFile), &ci); err != nil {
		return wallet.Account{}, err
	}

	a := wallet.Account{Name: name, Chains: make([]wallet.Chain, 0, len(ci.Chains))}
	for _, chainName := range ci.Chains {
		path := exporter.ChainFilePath(dir, chainName)

		var c wallet.Chain
		if err := readYAML(ctx, fs, path, &c); err != nil {
			return wallet.Account{}, err
		}
		if c.Name != chainName {
			return wallet.Account{}, fmt.Errorf("%s: %w (got %q, want %q)", path, ErrChainNameMismatch, c.Name, chainName)
		}
		a.Chains = append(a.Chains, c)
	}
	return a, nil
}

func readYAML(ctx context.Context, fs afero.Fs, path string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return nil
}
