package main

import (
	"fmt"
	"strings"

	"github.com/quantumauth-io/quantum-go-utils/log"
	clientconfig "github.com/quantumauth-io/wallet-data-maker/cmd/wallet-data-maker/config"
	"github.com/quantumauth-io/wallet-data-maker/internal/exporter"
	"github.com/quantumauth-io/wallet-data-maker/internal/loader"
	"github.com/quantumauth-io/wallet-data-maker/internal/report"
	"github.com/quantumauth-io/wallet-data-maker/internal/wallet"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type app struct {
	fs         afero.Fs
	loadConfig func() (*clientconfig.Config, error)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "wallet-data-maker",
		Short:         "Write the sample wallet dataset as a tree of YAML files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runExport,
	}
	root.AddCommand(newReportCmd(a), newTreeCmd(a))
	return root
}

func (a *app) runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	signers := wallet.Fixture()
	if err := exporter.NewExporter(a.fs).Export(cmd.Context(), signers, cfg.Output.BaseDir); err != nil {
		return err
	}

	log.Debug("export complete", "base_dir", cfg.Output.BaseDir, "signers", len(signers))
	fmt.Fprintf(cmd.OutOrStdout(), "Data files created in '%s' directory\n", cfg.Output.BaseDir)
	return nil
}

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Write coins.txt from an exported wallet tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			signers, err := loader.Load(cmd.Context(), a.fs, cfg.Output.BaseDir)
			if err != nil {
				return err
			}
			if err := report.WriteCoinsFile(a.fs, cfg.Output.CoinsFile, signers); err != nil {
				return fmt.Errorf("write %s: %w", cfg.Output.CoinsFile, err)
			}

			log.Debug("report written", "path", cfg.Output.CoinsFile)
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to '%s'\n", cfg.Output.CoinsFile)
			return nil
		},
	}
}

func newTreeCmd(a *app) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print an exported wallet tree grouped by signer or by chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			signers, err := loader.Load(cmd.Context(), a.fs, cfg.Output.BaseDir)
			if err != nil {
				return err
			}

			switch strings.ToLower(strings.TrimSpace(by)) {
			case "", "signer":
				return report.WriteSignerTree(cmd.OutOrStdout(), signers)
			case "chain":
				return report.WriteChainTable(cmd.OutOrStdout(), signers)
			default:
				return fmt.Errorf("invalid --by %q (allowed: signer, chain)", by)
			}
		},
	}
	cmd.Flags().StringVar(&by, "by", "signer", "Grouping: signer or chain")
	return cmd
}
