// Package expense holds the client-side expense model: the in-memory record
// store, period filtering, aggregation, and balance computation. Everything
// here is synchronous and pure; network access lives elsewhere.
package expense

import (
	"errors"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"

	"spendtui/category"
)

// DefaultCurrency is used whenever a currency cannot be derived from the
// expense set itself.
const DefaultCurrency = "USD"

var (
	ErrMissingID         = errors.New("expense id is required")
	ErrDuplicateID       = errors.New("expense id already exists")
	ErrNonPositiveAmount = errors.New("expense amount must be greater than zero")
	ErrUnknownCategory   = errors.New("unknown expense category")
	ErrCurrencyMismatch  = errors.New("expense currency differs from the store's")
)

// Expense is a single recorded spend event. The backend owns the record;
// this is the client's transient copy.
type Expense struct {
	ID       string
	Amount   *money.Money
	Date     time.Time
	Category category.Category
	Note     string
}

// Validate checks the record invariants before it is allowed into a store.
func (e Expense) Validate() error {
	if e.ID == "" {
		return ErrMissingID
	}
	if e.Amount == nil || e.Amount.Amount() <= 0 {
		return ErrNonPositiveAmount
	}
	if !category.Valid(e.Category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, e.Category)
	}
	return nil
}

// Store is an ordered, in-memory expense collection. Mutations return a new
// Store derived purely from the previous state and the operation, so rapid
// successive operations compose without lost updates.
type Store struct {
	items []Expense
}

// NewStore builds a store from the given records, preserving their order.
func NewStore(items ...Expense) Store {
	s := Store{items: make([]Expense, len(items))}
	copy(s.items, items)
	return s
}

// Items returns a copy of the records in insertion order.
func (s Store) Items() []Expense {
	out := make([]Expense, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of records.
func (s Store) Len() int {
	return len(s.items)
}

// Add validates e and returns a store with e appended. The previous store is
// left untouched. A store holds a single currency; amounts in another
// currency cannot be aggregated without a conversion rate, so they are
// rejected here rather than poisoning every later sum.
func (s Store) Add(e Expense) (Store, error) {
	if err := e.Validate(); err != nil {
		return s, err
	}
	if len(s.items) > 0 {
		if cur := currencyOf(s.items); e.Amount.Currency().Code != cur {
			return s, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, e.Amount.Currency().Code, cur)
		}
	}
	for _, existing := range s.items {
		if existing.ID == e.ID {
			return s, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
	}

	next := Store{items: make([]Expense, 0, len(s.items)+1)}
	next.items = append(next.items, s.items...)
	next.items = append(next.items, e)
	return next, nil
}

// Remove returns a store without the record identified by id. Removing an
// unknown id is a no-op, not an error.
func (s Store) Remove(id string) Store {
	next := Store{items: make([]Expense, 0, len(s.items))}
	for _, e := range s.items {
		if e.ID == id {
			continue
		}
		next.items = append(next.items, e)
	}
	return next
}

// currencyOf derives the working currency from the expense set.
func currencyOf(in []Expense) string {
	for _, e := range in {
		if e.Amount != nil {
			return e.Amount.Currency().Code
		}
	}
	return DefaultCurrency
}
