package expense

import (
	"errors"

	"github.com/Rhymond/go-money"
)

var ErrNegativeDeduction = errors.New("fixed deduction must be zero or greater")

// ValidateDeduction rejects deduction updates before any state changes.
func ValidateDeduction(d *money.Money) error {
	if d == nil || d.IsNegative() {
		return ErrNegativeDeduction
	}
	return nil
}

// Balance computes monthly income minus the fixed deduction minus the total
// of every expense in the given set. "Total expenses" deliberately spans all
// records currently loaded into the client, not just the visible period. No
// rounding happens here; callers format to two decimals at display time.
func Balance(income, fixedDeduction *money.Money, expenses []Expense) (*money.Money, error) {
	if income == nil {
		income = money.New(0, DefaultCurrency)
	}
	if fixedDeduction == nil {
		fixedDeduction = money.New(0, income.Currency().Code)
	}

	total := money.New(0, income.Currency().Code)
	for _, e := range expenses {
		var err error
		total, err = total.Add(e.Amount)
		if err != nil {
			return nil, err
		}
	}

	remaining, err := income.Subtract(fixedDeduction)
	if err != nil {
		return nil, err
	}

	return remaining.Subtract(total)
}
