package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrUserNameNotUnique     = errors.New("the user name must be unique")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique for its owner")
	ErrMappingNotUnique      = errors.New("a mapping for this merchant already exists for its owner")
	ErrSummaryNotUnique      = errors.New("a summary for this user, month and category already exists")
)

var (
	ErrEmissionFactorNegative = errors.New("the emission factor must not be negative")
	ErrUserNameEmpty          = errors.New("the user name must not be empty")
	ErrCategoryNameEmpty      = errors.New("the category name must not be empty")
	ErrMerchantNameEmpty      = errors.New("the merchant name must not be empty")
	ErrAmountNotPositive      = errors.New("the amount must be greater than zero")
	ErrEmissionNegative       = errors.New("the emission must not be negative")
	ErrEmissionNotCounted     = errors.New("only debit transactions that count toward the global emission index can carry an emission")
	ErrPaymentModeInvalid     = errors.New("the payment mode is invalid")
	ErrTransactionKindInvalid = errors.New("the transaction kind is invalid")
	ErrMatchEmpty             = errors.New("the match pattern must not be empty")
)
