package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var homeCredit = BankDef{
	Name:     "Хоум Кредит",
	Type:     models.BankHomeCredit,
	Aliases:  []string{"Home Credit", "Хоум Банк"},
	Packages: []string{"ru.homecredit.bank", "ru.homecredit.mycredit"},
	Senders:  []string{"HomeCredit", "HCFB"},
	Patterns: []string{
		// Зачисление 3333₽ на карту *2222. Баланс: 15000₽
		`Зачисление\s+{amount}\s*{rub}\s+на\s+карту\s+\*\d{4}\.\s*Баланс:?\s*{balance}\s*{rub}`,
		// Хоум Банк. Поступление 4 000 ₽ на карту *1111
		`Хоум\s*(?:Кредит|Банк).*?(?:Пополнение|Перевод|Поступление)\s+(?:на\s+)?\+?{amount}\s*{rub}`,
	},
	Fallback: []string{
		// Пополнение 1 000 ₽
		`(?:Пополнение|Перевод|Поступление)\s+(?:на\s+)?\+?{amount}\s*₽`,
	},
}
