package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var uralsib = BankDef{
	Name:     "УралСиб",
	Type:     models.BankUralsib,
	Aliases:  []string{"Uralsib", "Банк Уралсиб"},
	Packages: []string{"ru.uralsib.bank", "ru.bankuralsib.mb.android"},
	Senders:  []string{"URALSIB"},
	Patterns: []string{
		// Зачислено 3 000,50 RUB на счет *7788 от Петр С. Доступно 10 500,00 RUB
		`Зачислено\s+{amount}\s*{rub}\s+на\s+сч[её]т\s+\*\d{4}\s+от\s+{sender}\s+Доступно:?\s*{balance}\s*{rub}`,
		// УРАЛСИБ. Пополнение +1 000 RUB
		`УРАЛСИБ.*?(?:Пополнение|Зачисление|Поступление)\s+\+?{amount}\s*{rub}`,
	},
	Fallback: []string{
		// Зачислено 450 RUB
		`Зачислено\s+{amount}\s*{rub}`,
	},
}
