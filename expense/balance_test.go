package expense

import (
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/carlmjohnson/be"

	"spendtui/category"
)

func TestBalance(t *testing.T) {
	income := money.New(500000, DefaultCurrency)
	deduction := money.New(50000, DefaultCurrency)
	expenses := []Expense{
		mustExpense("1", 15000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food),
	}

	balance, err := Balance(income, deduction, expenses)
	be.NilErr(t, err)
	be.Equal(t, int64(435000), balance.Amount())
	be.Equal(t, "$4,350.00", balance.Display())
}

func TestBalanceNoExpenses(t *testing.T) {
	balance, err := Balance(money.New(500000, DefaultCurrency), money.New(50000, DefaultCurrency), nil)
	be.NilErr(t, err)
	be.Equal(t, int64(450000), balance.Amount())
}

func TestBalanceCanGoNegative(t *testing.T) {
	expenses := []Expense{
		mustExpense("1", 200000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Shopping),
	}

	balance, err := Balance(money.New(100000, DefaultCurrency), money.New(0, DefaultCurrency), expenses)
	be.NilErr(t, err)
	be.True(t, balance.IsNegative())
	be.Equal(t, int64(-100000), balance.Amount())
}

func TestBalanceNilInputsDefaultToZero(t *testing.T) {
	balance, err := Balance(nil, nil, nil)
	be.NilErr(t, err)
	be.Equal(t, int64(0), balance.Amount())
}

func TestValidateDeduction(t *testing.T) {
	be.NilErr(t, ValidateDeduction(money.New(0, DefaultCurrency)))
	be.NilErr(t, ValidateDeduction(money.New(50000, DefaultCurrency)))

	err := ValidateDeduction(money.New(-1, DefaultCurrency))
	be.Nonzero(t, err)

	err = ValidateDeduction(nil)
	be.Nonzero(t, err)
}
