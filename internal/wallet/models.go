package wallet

import (
	"math"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

type Asset struct {
	Name   string  `yaml:"name" json:"name"`
	Amount float64 `yaml:"amount" json:"amount"`
}

// MarshalYAML keeps amount a YAML float even when it is whole (1000.0, not 1000),
// so dynamically typed readers do not see an int.
func (a Asset) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "name"},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.Name},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "amount"},
			{Kind: yaml.ScalarNode, Tag: "!!float", Value: yamlFloat(a.Amount)},
		},
	}, nil
}

func yamlFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

type Chain struct {
	Name   string  `yaml:"name" json:"name"`
	Assets []Asset `yaml:"assets" json:"assets"`
}

type Account struct {
	Name   string  `yaml:"name" json:"name"`
	Chains []Chain `yaml:"chains" json:"chains"`
}

type Signer struct {
	Name     string    `yaml:"name" json:"name"`
	Accounts []Account `yaml:"accounts" json:"accounts"`
}

// SignersIndex is the on-disk shape of signers.yaml.
type SignersIndex struct {
	Signers []string `yaml:"signers"`
}

// AccountsIndex is the on-disk shape of <signer>/accounts.yaml.
type AccountsIndex struct {
	Accounts []string `yaml:"accounts"`
}

// ChainsIndex is the on-disk shape of <signer>/<account>/chains.yaml.
type ChainsIndex struct {
	Chains []string `yaml:"chains"`
}

func SignerNames(signers []Signer) []string {
	out := make([]string, 0, len(signers))
	for _, s := range signers {
		out = append(out, s.Name)
	}
	return out
}

func (s Signer) AccountNames() []string {
	out := make([]string, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		out = append(out, a.Name)
	}
	return out
}

func (a Account) ChainNames() []string {
	out := make([]string, 0, len(a.Chains))
	for _, c := range a.Chains {
		out = append(out, c.Name)
	}
	return out
}
