package api

import (
	"strconv"
	"time"

	"github.com/Rhymond/go-money"
)

// User is the authenticated account profile returned by the backend.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	MonthlyIncome  string `json:"monthly_income"`
	FixedDeduction string `json:"fixed_deduction"`
	Currency       string `json:"currency"`
}

// ParsedIncome returns the monthly income as money in the user's currency.
func (u *User) ParsedIncome() (*money.Money, error) {
	return parseAmount(u.MonthlyIncome, u.Currency)
}

// ParsedDeduction returns the fixed deduction as money in the user's currency.
func (u *User) ParsedDeduction() (*money.Money, error) {
	return parseAmount(u.FixedDeduction, u.Currency)
}

// Session is the result of a successful login or registration.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the registration request body.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IncomeUpdate changes the salary and fixed deduction on the backend.
type IncomeUpdate struct {
	Salary         string `json:"salary"`
	FixedDeduction string `json:"fixed_deduction"`
}

// ExpenseCreate is the request body for recording a new expense.
type ExpenseCreate struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	Note     string `json:"note,omitempty"`
}

// ExpenseRecord is a stored expense as the backend returns it. Amounts are
// decimal strings on the wire.
type ExpenseRecord struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	Note     string `json:"note,omitempty"`
}

// ParsedAmount returns the record's amount as money.
func (e *ExpenseRecord) ParsedAmount(currency string) (*money.Money, error) {
	return parseAmount(e.Amount, currency)
}

// ParsedDate returns the record's date. The backend sends RFC 3339 or a
// plain calendar date.
func (e *ExpenseRecord) ParsedDate() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, e.Date); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", e.Date)
}

// ExpenseFilters narrows ListExpenses to a date range.
type ExpenseFilters struct {
	StartDate *string
	EndDate   *string
}

// BalanceResponse is the backend's balance computation as of a date.
type BalanceResponse struct {
	Balance string `json:"balance"`
	AsOf    string `json:"as_of"`
}

// ParsedBalance returns the balance as money.
func (b *BalanceResponse) ParsedBalance(currency string) (*money.Money, error) {
	return parseAmount(b.Balance, currency)
}

// Summary is the backend's aggregate view over all stored expenses.
type Summary struct {
	TotalExpenses   string `json:"total_expenses"`
	AverageExpense  string `json:"average_expense"`
	HighestCategory string `json:"highest_category"`
	LowestCategory  string `json:"lowest_category"`
}

func parseAmount(s, currency string) (*money.Money, error) {
	if currency == "" {
		currency = "USD"
	}
	if s == "" {
		return money.New(0, currency), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return money.NewFromFloat(f, currency), nil
}
