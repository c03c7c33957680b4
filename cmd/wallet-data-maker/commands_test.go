package main

import (
	"bytes"
	"context"
	"testing"

	clientconfig "github.com/quantumauth-io/wallet-data-maker/cmd/wallet-data-maker/config"
	"github.com/quantumauth-io/wallet-data-maker/internal/loader"
	"github.com/quantumauth-io/wallet-data-maker/internal/wallet"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() *app {
	return &app{
		fs: afero.NewMemMapFs(),
		loadConfig: func() (*clientconfig.Config, error) {
			return &clientconfig.Config{Output: clientconfig.OutputSettings{
				BaseDir:   "wallet_data",
				CoinsFile: "coins.txt",
			}}, nil
		},
	}
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootExportsFixture(t *testing.T) {
	a := testApp()

	out, err := run(t, a)
	require.NoError(t, err)
	assert.Equal(t, "Data files created in 'wallet_data' directory\n", out)

	signers, err := loader.Load(context.Background(), a.fs, "wallet_data")
	require.NoError(t, err)
	assert.Equal(t, wallet.Fixture(), signers)
}

func TestRootRejectsArguments(t *testing.T) {
	_, err := run(t, testApp(), "extra")
	require.Error(t, err)
}

func TestReportWritesCoinsFile(t *testing.T) {
	a := testApp()
	_, err := run(t, a)
	require.NoError(t, err)

	out, err := run(t, a, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "coins.txt")

	got, err := afero.ReadFile(a.fs, "coins.txt")
	require.NoError(t, err)
	assert.Contains(t, string(got), "Signer: Signer2\nAccount: Account3\nChain: Solana\n  SOL: 75.3\n  SRM: 300\n")
}

func TestReportWithoutExportFails(t *testing.T) {
	_, err := run(t, testApp(), "report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signers.yaml")
}

func TestTreeViews(t *testing.T) {
	a := testApp()
	_, err := run(t, a)
	require.NoError(t, err)

	out, err := run(t, a, "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "Signer1\n  Account1\n    Ethereum\n      ETH: 5.2\n")

	out, err = run(t, a, "tree", "--by", "chain")
	require.NoError(t, err)
	assert.Contains(t, out, "Binance")
	assert.Contains(t, out, "BUSD")

	_, err = run(t, a, "tree", "--by", "asset")
	require.Error(t, err)
}
