// Package exporter materializes a wallet dataset as a directory tree of YAML files:
//
//	<base>/signers.yaml
//	<base>/<signer>/accounts.yaml
//	<base>/<signer>/<account>/chains.yaml
//	<base>/<signer>/<account>/<chain>.yaml
package exporter

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/quantumauth-io/wallet-data-maker/internal/constants"
	"github.com/quantumauth-io/wallet-data-maker/internal/securefile"
	"github.com/quantumauth-io/wallet-data-maker/internal/wallet"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

type Exporter struct {
	fs afero.Fs
}

func NewExporter(fs afero.Fs) *Exporter {
	return &Exporter{fs: fs}
}

// Export writes signers under baseDir. Existing files are overwritten, so
// running it twice with the same input leaves identical content behind.
func (e *Exporter) Export(ctx context.Context, signers []wallet.Signer, baseDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.mkdir(baseDir); err != nil {
		return err
	}

	if err := e.writeYAML(ctx, filepath.Join(baseDir, constants.SignersFile), wallet.SignersIndex{
		Signers: wallet.SignerNames(signers),
	}); err != nil {
		return err
	}

	for _, s := range signers {
		signerDir := filepath.Join(baseDir, s.Name)
		if err := e.mkdir(signerDir); err != nil {
			return err
		}

		if err := e.writeYAML(ctx, filepath.Join(signerDir, constants.AccountsFile), wallet.AccountsIndex{
			Accounts: s.AccountNames(),
		}); err != nil {
			return err
		}

		for _, a := range s.Accounts {
			if err := e.exportAccount(ctx, signerDir, a); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Exporter) exportAccount(ctx context.Context, signerDir string, a wallet.Account) error {
	accountDir := filepath.Join(signerDir, a.Name)
	if err := e.mkdir(accountDir); err != nil {
		return err
	}

	if err := e.writeYAML(ctx, filepath.Join(accountDir, constants.ChainsFile), wallet.ChainsIndex{
		Chains: a.ChainNames(),
	}); err != nil {
		return err
	}

	for _, c := range a.Chains {
		if err := e.writeYAML(ctx, ChainFilePath(accountDir, c.Name), c); err != nil {
			return err
		}
	}
	return nil
}

// ChainFilePath returns the file a chain record is written to inside accountDir.
func ChainFilePath(accountDir, chain string) string {
	return filepath.Join(accountDir, chain+constants.ChainFileExt)
}

// mkdir returns MkdirAll's *os.PathError unwrapped; it already names the op and path.
func (e *Exporter) mkdir(dir string) error {
	return e.fs.MkdirAll(dir, constants.DirectoryPerm)
}

func (e *Exporter) writeYAML(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	return securefile.AtomicWriteFile(e.fs, path, b, constants.FilePerm)
}

// Marshal encodes v as block-style YAML with the exporter's indentation.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(constants.YAMLIndent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
