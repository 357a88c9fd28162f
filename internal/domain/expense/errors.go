package expense

import "errors"

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidCategory = errors.New("invalid expense category")
	ErrReceiptTooLarge = errors.New("receipt file too large")
)
