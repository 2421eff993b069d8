package parser

import (
	"github.com/insightdelivered/bank-notification-parser/internal/models"
)

// Parser defines the interface for bank notification parsers.
type Parser interface {
	// BankName returns the human-readable bank name.
	BankName() string
	// BankType returns the bank's machine code.
	BankType() models.BankType
	// PackageNames returns the mobile app packages whose notifications this parser owns.
	PackageNames() []string
	// SenderCodes returns the SMS sender codes this parser owns.
	SenderCodes() []string
	// Detect is a cheap applicability check: does any known format fit the message.
	Detect(message string) bool
	// Parse extracts the credited transaction. It re-checks the formats itself,
	// so calling Detect first is not required.
	Parse(message string) (models.Transaction, bool)
}

// Result is what Registry.ParseMessage returns on success.
type Result struct {
	Parser      Parser
	Transaction models.Transaction
}
