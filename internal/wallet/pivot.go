package wallet

import "sort"

// Holding is one account's assets on a single chain.
type Holding struct {
	Signer  string
	Account string
	Assets  []Asset
}

// ChainHolding groups every holding of one chain name across all signers.
type ChainHolding struct {
	Chain    string
	Holdings []Holding
}

// ChainNames returns the distinct chain names across all signers, sorted.
func ChainNames(signers []Signer) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, s := range signers {
		for _, a := range s.Accounts {
			for _, c := range a.Chains {
				if _, ok := seen[c.Name]; ok {
					continue
				}
				seen[c.Name] = struct{}{}
				out = append(out, c.Name)
			}
		}
	}
	sort.Strings(out)
	return out
}

// ByChain pivots the signer hierarchy by chain name. Chains come out sorted;
// holdings within a chain keep signer/account traversal order.
func ByChain(signers []Signer) []ChainHolding {
	names := ChainNames(signers)
	idx := make(map[string]int, len(names))
	out := make([]ChainHolding, len(names))
	for i, n := range names {
		idx[n] = i
		out[i].Chain = n
	}

	for _, s := range signers {
		for _, a := range s.Accounts {
			for _, c := range a.Chains {
				i := idx[c.Name]
				out[i].Holdings = append(out[i].Holdings, Holding{
					Signer:  s.Name,
					Account: a.Name,
					Assets:  c.Assets,
				})
			}
		}
	}
	return out
}
