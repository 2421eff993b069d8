package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Group names that carry a fixed meaning in every bank pattern.
const (
	groupAmount  = "amount"
	groupSender  = "sender"
	groupBalance = "balance"
)

// Building blocks shared by the bank pattern tables.
//
//	{amount}  figure credited, captured as "amount"
//	{balance} balance after the credit, captured as "balance"
//	{sender}  counterparty name, captured as "sender"
//	{stop}    what may follow a sender that ends a format: a known keyword or the end
//	{gap}     optional free text before an amount, never ending inside a number or a time
//	{rub}     any spelling of the rouble
//
// A figure is either plain digits or thousands grouped by single spaces, so a
// card suffix or a time next to the amount never joins it. The sender is up
// to three capitalised words followed by up to two initials, matched
// case-sensitively.
const (
	figure     = `\b(?:\d{1,3}(?: \d{3})+|\d+)(?:[.,]\d{1,2})?`
	nameWord   = `[А-ЯЁA-Z][А-ЯЁа-яёA-Za-z\-]+`
	initial    = `[А-ЯЁA-Z]\.?`
	senderName = nameWord + `(?:\s+` + nameWord + `){0,2}(?:\s+` + initial + `){0,2}`
	senderStop = `(?:[.,]?\s+(?:Сообщение|Баланс|Доступно|Остаток|Карта)|[.,]?$)`
	rouble     = `(?:₽|RUB|RUR|руб\.?|р\.?)`
	gap        = `(?:.*?[^\d:.,])??`
)

var tokens = strings.NewReplacer(
	"{amount}", `(?P<amount>`+figure+`)`,
	"{balance}", `(?P<balance>`+figure+`)`,
	"{sender}", `(?P<sender>(?-i:`+senderName+`))`,
	"{stop}", senderStop,
	"{rub}", rouble,
	"{gap}", gap,
)

// pattern is one known message format of a bank together with the positions
// of its role groups. A position of -1 means the format does not carry that field.
type pattern struct {
	re      *regexp.Regexp
	amount  int
	sender  int
	balance int
}

// compilePattern expands the role tokens of expr and compiles it
// case-insensitively. Every pattern must capture an amount.
func compilePattern(expr string) (pattern, error) {
	re, err := regexp.Compile(`(?is)` + tokens.Replace(expr))
	if err != nil {
		return pattern{}, fmt.Errorf("compile %q: %w", expr, err)
	}

	p := pattern{
		re:      re,
		amount:  re.SubexpIndex(groupAmount),
		sender:  re.SubexpIndex(groupSender),
		balance: re.SubexpIndex(groupBalance),
	}
	if p.amount < 0 {
		return pattern{}, fmt.Errorf("pattern %q has no {amount} group", expr)
	}
	return p, nil
}

// field returns the text captured by group i, or "" when the group is absent
// from the pattern or did not participate in the match.
func field(m []string, i int) string {
	if i < 0 || i >= len(m) {
		return ""
	}
	return m[i]
}
