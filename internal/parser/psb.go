package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var psb = BankDef{
	Name:     "ПСБ",
	Type:     models.BankPSB,
	Aliases:  []string{"Промсвязьбанк", "PSB"},
	Packages: []string{"ru.psbank.android", "ru.psb", "logo.com.mbanking"},
	Senders:  []string{"PSB", "PSBANK"},
	Patterns: []string{
		// СЧЁТ5154 16:04 зачисление 50 000р ПСБ Баланс: 50 001.2р
		`СЧ[ЁЕ]Т\d+\s+\d{1,2}:\d{2}\s+зачисление\s+{amount}\s*р\s+ПСБ\s+Баланс:\s*{balance}\s*р`,
		// Пополнение *1234 на 5000 RUR. Остаток 12000 RUR
		`Пополнение\s+\*\d{4}\s+на\s+{amount}\s*RUR\.?\s+Остаток:?\s*{balance}\s*RUR`,
		// Карта*1234 зачисление 700 руб
		`Карта\s*\*\d{4}\s+(?:пополнение|зачисление)\s+(?:на\s+)?{amount}\s*{rub}`,
	},
	Fallback: []string{
		// перевод 300 руб
		`(?:пополнение|зачисление|перевод)\s+(?:на\s+)?{amount}\s*(?:RUR|руб|р\.)`,
	},
}
