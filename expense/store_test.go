package expense

import (
	"errors"
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/carlmjohnson/be"

	"spendtui/category"
)

func TestStoreAdd(t *testing.T) {
	s := NewStore()

	s, err := s.Add(mustExpense("1", 1000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food))
	be.NilErr(t, err)
	be.Equal(t, 1, s.Len())

	s, err = s.Add(mustExpense("2", 2000, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), category.Travel))
	be.NilErr(t, err)
	be.Equal(t, 2, s.Len())

	items := s.Items()
	be.Equal(t, "1", items[0].ID)
	be.Equal(t, "2", items[1].ID)
}

func TestStoreAddRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		e       Expense
		wantErr error
	}{
		{
			name:    "missing id",
			e:       Expense{Amount: money.New(100, DefaultCurrency), Category: category.Food},
			wantErr: ErrMissingID,
		},
		{
			name:    "zero amount",
			e:       Expense{ID: "1", Amount: money.New(0, DefaultCurrency), Category: category.Food},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "negative amount",
			e:       Expense{ID: "1", Amount: money.New(-100, DefaultCurrency), Category: category.Food},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "nil amount",
			e:       Expense{ID: "1", Category: category.Food},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "unknown category",
			e:       Expense{ID: "1", Amount: money.New(100, DefaultCurrency), Category: "Rent"},
			wantErr: ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			next, err := s.Add(tt.e)
			be.True(t, errors.Is(err, tt.wantErr))
			// no partial state change on validation failure
			be.Equal(t, 0, next.Len())
		})
	}
}

func TestStoreAddRejectsCurrencyMismatch(t *testing.T) {
	s := NewStore(mustExpense("1", 1000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food))

	next, err := s.Add(Expense{
		ID:       "2",
		Amount:   money.New(2000, "EUR"),
		Date:     time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Category: category.Travel,
	})
	be.True(t, errors.Is(err, ErrCurrencyMismatch))
	be.Equal(t, 1, next.Len())
}

func TestStoreAddRejectsDuplicateID(t *testing.T) {
	s := NewStore(mustExpense("1", 1000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food))

	next, err := s.Add(mustExpense("1", 2000, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), category.Travel))
	be.True(t, errors.Is(err, ErrDuplicateID))
	be.Equal(t, 1, next.Len())
}

func TestStoreRemove(t *testing.T) {
	s := NewStore(
		mustExpense("1", 1000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food),
		mustExpense("2", 2000, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), category.Travel),
	)

	next := s.Remove("1")
	be.Equal(t, 1, next.Len())
	be.Equal(t, "2", next.Items()[0].ID)

	// the previous store is untouched
	be.Equal(t, 2, s.Len())
}

func TestStoreRemoveMissingIDIsNoOp(t *testing.T) {
	s := NewStore(mustExpense("1", 1000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food))

	next := s.Remove("does-not-exist")
	be.Equal(t, 1, next.Len())
	be.Equal(t, "1", next.Items()[0].ID)
}

func TestStoreOperationsComposeInEventOrder(t *testing.T) {
	s := NewStore()

	ops := []Expense{
		mustExpense("1", 1000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food),
		mustExpense("2", 2000, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), category.Travel),
		mustExpense("3", 3000, time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC), category.Health),
	}

	for _, op := range ops {
		var err error
		s, err = s.Add(op)
		be.NilErr(t, err)
	}
	s = s.Remove("2")

	items := s.Items()
	be.Equal(t, 2, len(items))
	be.Equal(t, "1", items[0].ID)
	be.Equal(t, "3", items[1].ID)
}

func TestItemsReturnsCopy(t *testing.T) {
	s := NewStore(mustExpense("1", 1000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food))

	items := s.Items()
	items[0].ID = "mutated"

	be.Equal(t, "1", s.Items()[0].ID)
}
