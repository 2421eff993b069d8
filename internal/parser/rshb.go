package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var rshb = BankDef{
	Name:     "Россельхозбанк",
	Type:     models.BankRSHB,
	Aliases:  []string{"РСХБ", "RSHB"},
	Packages: []string{"ru.rshb.mbank", "ru.rshb.dbo"},
	Senders:  []string{"RSHB", "Rosselhozbank"},
	Patterns: []string{
		// Пополнение счета *5566 на 2 000.00 руб. Остаток: 7 500.00 руб.
		`Пополнение\s+сч[её]та\s+\*\d{4}\s+на\s+{amount}\s*{rub}\.?\s+Остаток:?\s*{balance}\s*{rub}`,
		// РСХБ: Перевод 1 000 ₽ зачислен
		`РСХБ.*?(?:Пополнение|Перевод|Зачисление)\s+{gap}{amount}\s*{rub}`,
	},
	Fallback: []string{
		// Пополнение вклада 3 000 ₽
		`(?:Пополнение|Перевод)\s+{gap}{amount}\s*₽`,
	},
}
