package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var ozonBank = BankDef{
	Name:     "Озон Банк",
	Type:     models.BankOzon,
	Aliases:  []string{"Ozon Bank", "Ozon Банк", "Озон"},
	Packages: []string{"ru.ozon.bank", "ru.ozon.fintech.finance"},
	Senders:  []string{"OZON", "OzonBank"},
	Patterns: []string{
		// Озон Банк: Пополнение на 1 500 ₽ от Анна С. Баланс: 3 200 ₽
		`(?:Ozon|Озон)\s*Банк:?\s*Пополнение\s+на\s+{amount}\s*{rub}\s+от\s+{sender}\s+Баланс:?\s*{balance}\s*{rub}`,
		// Поступление 2 500 ₽ от Ольга П. через СБП
		`Поступление\s+{amount}\s*{rub}\s+от\s+{sender}\s+через\s+СБП`,
	},
	Fallback: []string{
		// Перевод +800 ₽
		`(?:Пополнение|Перевод|Поступление)\s+(?:на\s+)?\+?{amount}\s*₽`,
	},
}
