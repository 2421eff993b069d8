package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var domRF = BankDef{
	Name:     "ДОМ.РФ",
	Type:     models.BankDomRF,
	Aliases:  []string{"Банк ДОМ.РФ", "DOM.RF", "ДОМРФ"},
	Packages: []string{"ru.domrf.mobile", "ru.rossiyskiy.kapital"},
	Senders:  []string{"DOM.RF", "BANK_DOMRF"},
	Patterns: []string{
		// Зачисление +7 000 ₽ от Сергей К. на счёт *4321. Доступно: 9 000 ₽
		`Зачисление\s+\+?{amount}\s*{rub}\s+от\s+{sender}\s+на\s+сч[её]т\s+\*\d{4}\.\s*Доступно:?\s*{balance}\s*{rub}`,
		// ДОМ.РФ: Поступление 1 200 ₽
		`ДОМ\.?\s?РФ.*?(?:Зачисление|Поступление|Пополнение)\s+\+?{amount}\s*{rub}`,
		// Поступление 800 ₽ на счёт *4321
		`(?:Зачисление|Поступление)\s+\+?{amount}\s*{rub}\s+на\s+сч[её]т\s+\*\d{4}`,
	},
}
