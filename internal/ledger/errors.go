package ledger

import (
	"fmt"

	"github.com/tally-dev/tally/internal/model"
)

// MissingFieldError reports a required field absent from a document record.
type MissingFieldError struct {
	Kind  string // record kind: account, transaction, price
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s record: missing required field %q", e.Kind, e.Field)
}

// TypeMismatchError reports a field whose document value has the wrong type.
type TypeMismatchError struct {
	Kind  string
	Field string
	Value any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s record: field %q: unexpected value %v (%T)", e.Kind, e.Field, e.Value, e.Value)
}

// InvalidDateError reports a date field that could not be parsed.
type InvalidDateError struct {
	Kind  string
	Field string
	Value any
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s record: field %q: invalid date %v", e.Kind, e.Field, e.Value)
}

// UnknownAccountError reports a transaction referencing an undeclared account.
type UnknownAccountError struct {
	Name string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("account %q does not exist", e.Name)
}

// UnbalancedTransactionError reports a same-currency transaction whose legs
// do not net to zero.
type UnbalancedTransactionError struct {
	Transaction model.Transaction
}

func (e *UnbalancedTransactionError) Error() string {
	return fmt.Sprintf("transaction does not balance:\n%s", e.Transaction)
}
