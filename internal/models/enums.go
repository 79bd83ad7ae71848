package models

import (
	"fmt"
	"strings"
)

// PaymentMode is the instrument a transaction was paid with.
type PaymentMode string

const (
	PaymentModeUPI        PaymentMode = "UPI"
	PaymentModeCard       PaymentMode = "CARD"
	PaymentModeNetBanking PaymentMode = "NETBANKING"
	PaymentModeCash       PaymentMode = "CASH"
)

var paymentModes = []PaymentMode{PaymentModeUPI, PaymentModeCard, PaymentModeNetBanking, PaymentModeCash}

// ParsePaymentMode parses a payment mode token case-insensitively.
func ParsePaymentMode(s string) (PaymentMode, error) {
	token := PaymentMode(strings.ToUpper(strings.TrimSpace(s)))
	for _, m := range paymentModes {
		if m == token {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrPaymentModeInvalid, s)
}

// TransactionKind is the direction of a transaction.
type TransactionKind string

const (
	Debit  TransactionKind = "DEBIT"
	Credit TransactionKind = "CREDIT"
)

// ParseTransactionKind parses a transaction kind token case-insensitively.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(strings.ToUpper(strings.TrimSpace(s))) {
	case Debit:
		return Debit, nil
	case Credit:
		return Credit, nil
	}

	return "", fmt.Errorf("%w: %q", ErrTransactionKindInvalid, s)
}
