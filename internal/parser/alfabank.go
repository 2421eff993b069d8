package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var alfaBank = BankDef{
	Name:     "Альфа-Банк",
	Type:     models.BankAlfa,
	Aliases:  []string{"Альфа Банк", "Alfa-Bank", "AlfaBank"},
	Packages: []string{"ru.alfabank.mobile.android", "ru.alfabank"},
	Senders:  []string{"Alfa-Bank", "AlfaBank"},
	Patterns: []string{
		// Пополнение *1234 на 5000 RUR. Баланс: 50000 RUR
		`Пополнение\s+\*\d{4}\s+на\s+{amount}\s*{rub}\.?\s+Баланс:?\s*{balance}\s*{rub}`,
		// *1234 Перевод из Сбербанк +5000р от Иван И. Баланс: 15000р
		`\*\d{4}\s+Перевод\s+из\s+[^+]+?\s*\+{amount}\s*{rub}\s+от\s+{sender}\s+Баланс:?\s*{balance}\s*{rub}`,
	},
	Fallback: []string{
		// Поступление +2 500 ₽
		`(?:Перевод|Зачисление|Поступление)(?:\s+из\s+[^+]+?)?\s*\+{amount}\s*{rub}`,
	},
}
