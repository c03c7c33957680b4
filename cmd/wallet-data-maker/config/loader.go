package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/quantumauth-io/wallet-data-maker/internal/constants"
	"github.com/quantumauth-io/wallet-data-maker/internal/securefile"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

//go:embed default.yaml
var EmbeddedConfigYAML []byte

type OutputSettings struct {
	BaseDir   string
	CoinsFile string
}

type Config struct {
	Output OutputSettings `mapstructure:"Output"`
}

func Load() (*Config, error) {
	paths, err := securefile.ConfigPathCandidates(constants.AppName)
	if err != nil {
		return nil, err
	}
	return LoadFrom(afero.NewOsFs(), paths)
}

// LoadFrom reads the embedded defaults, then merges the first
// wallet-data-maker.yaml found in paths. A missing user file is not an error.
func LoadFrom(fs afero.Fs, paths []string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(EmbeddedConfigYAML)); err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}

	v.SetConfigName(constants.ConfigFileName)
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("merge config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.Output.BaseDir = strings.TrimSpace(c.Output.BaseDir)
	c.Output.CoinsFile = strings.TrimSpace(c.Output.CoinsFile)

	if c.Output.BaseDir == "" {
		return errors.New("Output.BaseDir must not be empty")
	}
	if c.Output.CoinsFile == "" {
		return errors.New("Output.CoinsFile must not be empty")
	}
	return nil
}
