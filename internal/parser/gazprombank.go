package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var gazprombank = BankDef{
	Name:     "Газпромбанк",
	Type:     models.BankGazprom,
	Aliases:  []string{"Gazprombank", "ГПБ"},
	Packages: []string{"ru.gazprombank.android.mobilebank.app", "ru.gazprombank.android", "ru.gazprombank"},
	Senders:  []string{"Gazprombank", "GPB"},
	Patterns: []string{
		// *5678 Получен перевод 7000р SBP C2C ZACHISLENIE Доступно 50000р
		`\*\d{4}\s+Получен\s+перевод\s+{amount}\s*{rub}\s+.*?Доступно:?\s*{balance}\s*{rub}`,
		// Перевод зачисление 5000₽ от Дмитрий Д. Баланс: 20000₽
		`Перевод\s+зачисление\s+{amount}\s*{rub}\s+от\s+{sender}\s*Баланс:?\s*{balance}\s*{rub}`,
	},
	Fallback: []string{
		// Получен перевод 900р
		`Получен\s+перевод\s+{amount}\s*{rub}`,
		// Перевод зачисление 1 200 ₽
		`Перевод\s+зачисление\s+{amount}\s*{rub}`,
	},
}
