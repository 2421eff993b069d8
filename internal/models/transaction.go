package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRUB is the only currency the bank parsers recognise.
const CurrencyRUB = "RUB"

// Transaction is a single incoming credit extracted from a bank notification.
type Transaction struct {
	Amount     decimal.Decimal     `json:"amount"`
	Currency   string              `json:"currency"`
	SenderName string              `json:"senderName,omitempty"`
	Balance    decimal.NullDecimal `json:"balance"`
	Timestamp  *time.Time          `json:"timestamp,omitempty"` // never set by current parsers
}

// HasBalance reports whether the notification quoted an account balance.
func (t Transaction) HasBalance() bool {
	return t.Balance.Valid
}

// BankType is the stable machine code of a supported bank.
type BankType string

const (
	BankTinkoff    BankType = "TBANK"
	BankSberbank   BankType = "SBERBANK"
	BankVTB        BankType = "VTB"
	BankAlfa       BankType = "ALFABANK"
	BankGazprom    BankType = "GAZPROMBANK"
	BankOzon       BankType = "OZONBANK"
	BankHomeCredit BankType = "HOMECREDIT"
	BankOTP        BankType = "OTPBANK"
	BankPSB        BankType = "PROMSVYAZBANK"
	BankDomRF      BankType = "DOMRF"
	BankMTS        BankType = "MTSBANK"
	BankUralsib    BankType = "URALSIB"
	BankRaiffeisen BankType = "RAIFFEISEN"
	BankPochta     BankType = "POCHTABANK"
	BankSPB        BankType = "SPBBANK"
	BankRNKB       BankType = "RNKB"
	BankRSHB       BankType = "ROSSELKHOZBANK"
	BankGenericSMS BankType = "GENERIC"
)

// Notification is one raw notification as received from a device.
type Notification struct {
	Message     string `json:"message"`
	PackageName string `json:"packageName,omitempty"`
	SenderCode  string `json:"senderCode,omitempty"`
}

// Outcome pairs a notification with what the parsers made of it.
// Bank is empty and Transaction is nil when nothing matched.
type Outcome struct {
	Notification Notification `json:"notification"`
	Bank         string       `json:"bank,omitempty"`
	BankType     BankType     `json:"bankType,omitempty"`
	Transaction  *Transaction `json:"transaction,omitempty"`
}

// Matched reports whether a parser produced a transaction.
func (o Outcome) Matched() bool {
	return o.Transaction != nil
}
