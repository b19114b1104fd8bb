// Package accounts manages the account list stored in accounts/accounts.csv.
package accounts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cashcare-dev/cashcare/internal/id"
	"github.com/cashcare-dev/cashcare/internal/model"
)

// ErrDuplicate is returned when an added account clashes with an existing
// id or name.
var ErrDuplicate = errors.New("duplicate account")

// Path returns the accounts file under a repo root.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, "accounts", "accounts.csv")
}

// Service provides in-memory lookup over the account list.
type Service struct {
	accounts []model.Account
	byID     map[string]int
	byName   map[string]int
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	s := &Service{byID: make(map[string]int), byName: make(map[string]int)}
	for _, a := range accounts {
		s.index(a)
	}
	return s
}

func (s *Service) index(a model.Account) {
	s.accounts = append(s.accounts, a)
	i := len(s.accounts) - 1
	s.byID[a.ID] = i
	if a.Name != "" {
		s.byName[strings.ToLower(a.Name)] = i
	}
}

// Load reads accounts.csv from a repo root and returns a Service.
func Load(repoRoot string) (*Service, error) {
	f, err := os.Open(Path(repoRoot))
	if err != nil {
		return nil, fmt.Errorf("opening accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts in file order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id string) (model.Account, bool) {
	i, ok := s.byID[id]
	if !ok {
		return model.Account{}, false
	}
	return s.accounts[i], true
}

// Resolve finds an account by ID or, failing that, by case-insensitive name.
func (s *Service) Resolve(ref string) (model.Account, bool) {
	if a, ok := s.Get(ref); ok {
		return a, true
	}
	i, ok := s.byName[strings.ToLower(strings.TrimSpace(ref))]
	if !ok {
		return model.Account{}, false
	}
	return s.accounts[i], true
}

// Exists reports whether ref names an account by ID or name.
func (s *Service) Exists(ref string) bool {
	_, ok := s.Resolve(ref)
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// TotalBalance sums every balance; liabilities count negatively.
func (s *Service) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// Add registers a new account. An empty ID is replaced with a generated
// one. Returns the stored account.
func (s *Service) Add(a model.Account) (model.Account, error) {
	if strings.TrimSpace(a.Name) == "" {
		return model.Account{}, fmt.Errorf("account name is required")
	}
	if !a.Type.Valid() {
		return model.Account{}, fmt.Errorf("unknown account type %q", a.Type)
	}
	if a.ID == "" {
		a.ID = id.NewAccountID()
	}
	if _, ok := s.byID[a.ID]; ok {
		return model.Account{}, fmt.Errorf("%w: id %q", ErrDuplicate, a.ID)
	}
	if _, ok := s.byName[strings.ToLower(a.Name)]; ok {
		return model.Account{}, fmt.Errorf("%w: name %q", ErrDuplicate, a.Name)
	}
	s.index(a)
	return a, nil
}

// Save writes the account list to accounts/accounts.csv.
func (s *Service) Save(repoRoot string) error {
	path := Path(repoRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}
	return nil
}
