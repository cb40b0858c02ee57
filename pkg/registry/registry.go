// Package registry holds the global account registry that transaction
// config directives are resolved against. The registry keeps two
// tables: ordinary test accounts and genesis accounts. Account names
// are case-insensitive and stored lowercased.
package registry

import (
	"fmt"
	"strings"

	"ledgerhq/tycho/pkg/literal"
)

// AccountData describes one registered account.
type AccountData struct {
	Address        literal.Address
	Balance        uint64
	SequenceNumber uint64
}

// Global is the account registry shared by all transaction blocks in a
// test script. It is read-only during config building; callers must not
// mutate it concurrently with builds.
type Global struct {
	Accounts        map[string]*AccountData
	GenesisAccounts map[string]*AccountData
}

// New creates an empty registry.
func New() *Global {
	return &Global{
		Accounts:        make(map[string]*AccountData),
		GenesisAccounts: make(map[string]*AccountData),
	}
}

// AddAccount registers an ordinary account. Names are lowercased.
// Registering a name that already exists in either table is an error.
func (g *Global) AddAccount(name string, data *AccountData) error {
	return g.add(g.Accounts, name, data)
}

// AddGenesisAccount registers a genesis account. Names are lowercased.
// Registering a name that already exists in either table is an error.
func (g *Global) AddGenesisAccount(name string, data *AccountData) error {
	return g.add(g.GenesisAccounts, name, data)
}

func (g *Global) add(table map[string]*AccountData, name string, data *AccountData) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("account name cannot be empty")
	}
	if g.Has(name) {
		return fmt.Errorf("account '%s' already exists", name)
	}
	table[name] = data
	return nil
}

// Account looks up an ordinary account by lowercase name.
func (g *Global) Account(name string) (*AccountData, bool) {
	data, ok := g.Accounts[name]
	return data, ok
}

// GenesisAccount looks up a genesis account by lowercase name.
func (g *Global) GenesisAccount(name string) (*AccountData, bool) {
	data, ok := g.GenesisAccounts[name]
	return data, ok
}

// Has reports whether the name is registered in either table.
func (g *Global) Has(name string) bool {
	if _, ok := g.Accounts[name]; ok {
		return true
	}
	_, ok := g.GenesisAccounts[name]
	return ok
}
