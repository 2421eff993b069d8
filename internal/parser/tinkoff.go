package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var tinkoff = BankDef{
	Name:     "Тинькофф",
	Type:     models.BankTinkoff,
	Aliases:  []string{"Tinkoff", "T-Bank", "Т-Банк", "Т-Банк (Тинькофф)"},
	Packages: []string{"com.idamob.tinkoff.android", "ru.tinkoff", "ru.tinkoff.sme"},
	Senders:  []string{"Tinkoff", "T-Bank", "TBANK"},
	Patterns: []string{
		// Пополнение, счет RUB. 2 000 RUB. Ольга М. Доступно 5 100 RUB
		`Пополнение,\s*сч[её]т\s+RUB\.\s*{amount}\s*{rub}\.\s*{sender}\s+Доступно\s+{balance}\s*{rub}`,
		// Пополнение, счет RUB. 5 000 ₽ от Иван И. Баланс: 15 000 ₽
		`Пополнение,\s*сч[её]т\s+RUB\.\s*{amount}\s*{rub}\s+от\s+{sender}\s+Баланс:?\s*{balance}\s*{rub}`,
		// Пополнение +25000. Доступно: 45320р. Тинькофф
		`Пополнение\s*\+\s*{amount}\s*{rub}?\.\s*(?:Доступно|Баланс):?\s*{balance}\s*{rub}?\.?\s*(?:Тинькофф|T-Bank|Т-Банк)`,
		// Пополнение, счет RUB. 700 RUB
		`Пополнение,\s*сч[её]т\s+RUB\.\s*{amount}\s*{rub}`,
	},
	Fallback: []string{
		// Вам перевели 1 500 ₽
		`Вам\s+перевели\s+{amount}\s*{rub}`,
	},
}
