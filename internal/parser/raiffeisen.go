package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var raiffeisen = BankDef{
	Name:     "Райффайзенбанк",
	Type:     models.BankRaiffeisen,
	Aliases:  []string{"Райффайзен", "Raiffeisen"},
	Packages: []string{"ru.raiffeisen.mobile.new", "ru.raiffeisen", "ru.raiffeisenbank"},
	Senders:  []string{"Raiffeisen", "RBA"},
	Patterns: []string{
		// +5 000.00 RUB перевод от Анна К. Баланс: 12 000.00 RUB
		`\+{amount}\s*RUB\s+перевод\s+от\s+{sender}\s+Баланс:?\s*{balance}\s*RUB`,
		// Перевод от Олег Т. +3 000 ₽
		`Перевод\s+от\s+{sender}\s+\+{amount}\s*{rub}`,
	},
	Fallback: []string{
		// +1 000 RUB входящий перевод
		`\+{amount}\s*RUB.*?перевод`,
		// Пополнение через СБП 5 000 ₽
		`(?:Пополнение|Зачисление)\s+{gap}{amount}\s*₽`,
	},
}
