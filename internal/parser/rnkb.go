package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var rnkb = BankDef{
	Name:     "РНКБ",
	Type:     models.BankRNKB,
	Aliases:  []string{"RNKB", "RNCB", "РНКБ Банк"},
	Packages: []string{"ru.rncb.mobile", "ru.rnkb"},
	Senders:  []string{"RNCB", "RNKB"},
	Patterns: []string{
		// Зачисление перевода СБП 4 500,00 RUB от Ирина В. Карта *3344 Доступно 6 700,00 RUB
		`Зачисление\s+перевода\s+СБП\s+{amount}\s*{rub}\s+от\s+{sender}\s+Карта\s+\*\d{4}\s+Доступно:?\s*{balance}\s*{rub}`,
		// РНКБ: Пополнение 800 RUB
		`РНКБ.*?(?:Зачисление|Пополнение|Поступление)\s+(?:перевода\s+)?(?:СБП\s+)?\+?{amount}\s*{rub}`,
		// Зачисление перевода СБП 1 500,00 RUB
		`Зачисление\s+перевода\s+СБП\s+{amount}\s*{rub}`,
	},
}
