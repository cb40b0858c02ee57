package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ledgerhq/tycho/pkg/literal"
)

// manifest is the YAML shape of an account manifest file:
//
//	accounts:
//	  alice:
//	    address: "0x1"
//	    balance: 1000000
//	    sequence_number: 0
//	genesis_accounts:
//	  association:
//	    address: "0xa550c18"
type manifest struct {
	Accounts        map[string]manifestAccount `yaml:"accounts"`
	GenesisAccounts map[string]manifestAccount `yaml:"genesis_accounts"`
}

type manifestAccount struct {
	Address        string `yaml:"address"`
	Balance        uint64 `yaml:"balance"`
	SequenceNumber uint64 `yaml:"sequence_number"`
}

// LoadFile loads an account registry from a YAML manifest at the given
// path. Every account must carry a parseable address; duplicate names
// across the two tables are rejected.
func LoadFile(path string) (*Global, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read account manifest %q: %w", path, err)
	}
	return Load(data, path)
}

// Load parses an account manifest from a byte slice. The source name is
// used in error messages only.
func Load(data []byte, source string) (*Global, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse account manifest %q: %w", source, err)
	}

	g := New()
	if err := addAll(g.AddAccount, m.Accounts); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	if err := addAll(g.AddGenesisAccount, m.GenesisAccounts); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return g, nil
}

func addAll(add func(string, *AccountData) error, accounts map[string]manifestAccount) error {
	for name, acct := range accounts {
		if acct.Address == "" {
			return fmt.Errorf("account '%s' has no address", name)
		}
		addr, err := literal.ParseAddress(acct.Address)
		if err != nil {
			return fmt.Errorf("account '%s': %w", name, err)
		}
		data := &AccountData{
			Address:        addr,
			Balance:        acct.Balance,
			SequenceNumber: acct.SequenceNumber,
		}
		if err := add(name, data); err != nil {
			return err
		}
	}
	return nil
}
