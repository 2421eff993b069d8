package parser

import (
	"fmt"

	"github.com/insightdelivered/bank-notification-parser/internal/models"
)

// BankDef declares a bank: its identity, the packages and SMS sender codes it
// owns, and its known notification formats.
//
// Patterns hold the formats only this bank sends, ordered from the most
// specific (amount, sender and balance) down. Fallback holds generic
// "credit keyword + amount" safety nets that other banks' messages could also
// fit; a blind search only reaches them after every bank's Patterns failed.
type BankDef struct {
	Name     string
	Type     models.BankType
	Aliases  []string
	Packages []string
	Senders  []string
	Patterns []string
	Fallback []string
}

// Bank is a compiled BankDef. It holds no per-call state and is safe to share.
type Bank struct {
	name     string
	bankType models.BankType
	aliases  []string
	packages []string
	senders  []string
	patterns []pattern
	fallback []pattern
}

// NewBank compiles the patterns of def.
func NewBank(def BankDef) (*Bank, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("bank definition without a name")
	}
	if len(def.Patterns)+len(def.Fallback) == 0 {
		return nil, fmt.Errorf("bank %q has no patterns", def.Name)
	}

	b := &Bank{
		name:     def.Name,
		bankType: def.Type,
		aliases:  append([]string(nil), def.Aliases...),
		packages: append([]string(nil), def.Packages...),
		senders:  append([]string(nil), def.Senders...),
	}

	var err error
	if b.patterns, err = compileAll(def.Name, def.Patterns); err != nil {
		return nil, err
	}
	if b.fallback, err = compileAll(def.Name, def.Fallback); err != nil {
		return nil, err
	}
	return b, nil
}

func compileAll(bank string, exprs []string) ([]pattern, error) {
	out := make([]pattern, 0, len(exprs))
	for _, expr := range exprs {
		p, err := compilePattern(expr)
		if err != nil {
			return nil, fmt.Errorf("bank %q: %w", bank, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// BankName returns the display name, e.g. "Сбербанк".
func (b *Bank) BankName() string {
	return b.name
}

// BankType returns the machine code, e.g. models.BankSberbank.
func (b *Bank) BankType() models.BankType {
	return b.bankType
}

// PackageNames returns a copy of the app packages the bank owns.
func (b *Bank) PackageNames() []string {
	return append([]string(nil), b.packages...)
}

// SenderCodes returns a copy of the SMS sender codes the bank owns.
func (b *Bank) SenderCodes() []string {
	return append([]string(nil), b.senders...)
}

// Detect reports whether any of the bank's formats matches the message.
func (b *Bank) Detect(message string) bool {
	message = normalizeMessage(message)
	return anyMatch(b.patterns, message) || anyMatch(b.fallback, message)
}

// Parse tries the bank's own formats and then its fallbacks, in order, and
// returns the transaction extracted by the first one that matches with sane
// figures. A format whose amount is not a positive number, or whose balance
// is malformed, counts as not matching.
func (b *Bank) Parse(message string) (models.Transaction, bool) {
	message = normalizeMessage(message)
	if tx, ok := firstMatch(b.patterns, message); ok {
		return tx, true
	}
	return firstMatch(b.fallback, message)
}

// parseSpecific is Parse restricted to the bank's own formats.
func (b *Bank) parseSpecific(message string) (models.Transaction, bool) {
	return firstMatch(b.patterns, normalizeMessage(message))
}

// parseFallback is Parse restricted to the bank's fallbacks.
func (b *Bank) parseFallback(message string) (models.Transaction, bool) {
	return firstMatch(b.fallback, normalizeMessage(message))
}

func anyMatch(patterns []pattern, message string) bool {
	for _, p := range patterns {
		if p.re.MatchString(message) {
			return true
		}
	}
	return false
}

func firstMatch(patterns []pattern, message string) (models.Transaction, bool) {
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		if tx, ok := extract(p, m); ok {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

func extract(p pattern, m []string) (models.Transaction, bool) {
	amount, err := ParseAmount(field(m, p.amount))
	if err != nil || !amount.IsPositive() {
		return models.Transaction{}, false
	}

	tx := models.Transaction{
		Amount:     amount,
		Currency:   models.CurrencyRUB,
		SenderName: NormalizeName(field(m, p.sender)),
	}

	if raw := field(m, p.balance); raw != "" {
		balance, err := ParseAmount(raw)
		if err != nil || balance.IsNegative() {
			return models.Transaction{}, false
		}
		tx.Balance.Decimal = balance
		tx.Balance.Valid = true
	}

	return tx, true
}
