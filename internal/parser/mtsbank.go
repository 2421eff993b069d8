package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var mtsBank = BankDef{
	Name:     "МТС Банк",
	Type:     models.BankMTS,
	Aliases:  []string{"MTS Bank", "МТС Деньги"},
	Packages: []string{"ru.mts.bank", "ru.mtsbank", "ru.mts.money"},
	Senders:  []string{"MTS-Bank", "MTSBANK"},
	Patterns: []string{
		// Перевод от IVANOV I I. Сумма: 5000 руб. Баланс: 25000 руб.
		`Перевод\s+от\s+{sender}\s*Сумма:\s*{amount}\s*{rub}\.?\s*Баланс:\s*{balance}\s*{rub}`,
		// МТС Банк: Поступление 2 000 RUB. Баланс: 4 500 RUB
		`МТС\s*Банк.*?(?:Поступление|Пополнение|Зачисление)\s+{amount}\s*{rub}.*?Баланс:?\s*{balance}\s*{rub}`,
		// Пополнение 1 000 RUB на карту *5678
		`(?:Поступление|Пополнение|Зачисление)\s+{amount}\s*{rub}\.?\s+на\s+карту\s+\*\d{4}`,
	},
}
