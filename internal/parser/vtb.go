package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var vtb = BankDef{
	Name:     "ВТБ",
	Type:     models.BankVTB,
	Aliases:  []string{"VTB", "ВТБ Онлайн", "VTB24"},
	Packages: []string{"ru.vtb24.mobilebanking.android", "ru.vtb24", "ru.vtb"},
	Senders:  []string{"VTB", "VTB24"},
	Patterns: []string{
		// ВТБ Онлайн | Поступление 30000р Счет*5715 от АНИ Н. Баланс 30053.47р 22:42
		`ВТБ\s+Онлайн\s*\|\s*Поступление\s+{amount}\s*{rub}\s+Сч[её]т\*\d{4}\s+от\s+{sender}\s+Баланс:?\s*{balance}\s*{rub}`,
		// Поступление 3201р Счет*1234 SBP Баланс 50000р 12:34
		`Поступление\s+{amount}\s*{rub}?\s+Сч[её]т\*\d{4}\.?(?:\s+(?:SBP|СБП))?\s+Баланс:?\s*{balance}\s*{rub}`,
		// ВТБ: зачисление 10000р. Отправитель: ООО КОМПАНИЯ
		`ВТБ:\s*зачисление\s+{amount}\s*{rub}\.?\s+Отправитель:\s*{sender}{stop}`,
		// Поступление 3201 Счет*1234 SBP
		`Поступление\s+{amount}\s*{rub}?\s*(?:на\s+)?Сч[её]т\*\d{4}`,
	},
	Fallback: []string{
		// Поступление 700 ₽
		`Поступление\s+{amount}\s*{rub}`,
	},
}
