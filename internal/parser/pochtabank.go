package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var pochtaBank = BankDef{
	Name:     "Почта Банк",
	Type:     models.BankPochta,
	Aliases:  []string{"Pochtabank", "Pochta Bank"},
	Packages: []string{"ru.pochta.bank", "ru.pochtabank.mobile"},
	Senders:  []string{"POCHTABANK"},
	Patterns: []string{
		// Почта Банк: Пополнение карты *1234 на 9 999 ₽. Баланс: 20 000 ₽
		`Почта\s+Банк:\s*Пополнение\s+карты\s+\*\d{4}\s+на\s+{amount}\s*{rub}\.?\s+Баланс:?\s*{balance}\s*{rub}`,
		// Пополнение карты *1234 на сумму 9999 ₽
		`Пополнение\s+карты\s+\*\d{4}\s+на\s+сумму\s+{amount}\s*{rub}`,
	},
	Fallback: []string{
		// Перевод по номеру телефона 250 ₽
		`(?:Пополнение|Перевод|Зачисление)\s+{gap}{amount}\s*₽`,
	},
}
