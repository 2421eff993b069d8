package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var bankSPB = BankDef{
	Name:     "Банк Санкт-Петербург",
	Type:     models.BankSPB,
	Aliases:  []string{"БСПБ", "BSPB", "Bank Saint-Petersburg"},
	Packages: []string{"ru.bspb", "com.bspb.mobile"},
	Senders:  []string{"BankSPB", "BSPB"},
	Patterns: []string{
		// *0977 Зачислен перевод по СБП 12264RUB 16:54 от Владимир Олегович Л
		`\*\d{4}\s+Зачислен\s+перевод\s+по\s+СБП\s+{amount}\s*{rub}\s+\d{1,2}:\d{2}\s+от\s+{sender}{stop}`,
		// *0977 Зачисление 5000RUB 12:01 Баланс 17264RUB
		`\*\d{4}\s+Зачисление\s+{amount}\s*{rub}\s+\d{1,2}:\d{2}\s+Баланс:?\s*{balance}\s*{rub}`,
		// *0977 Зачислен перевод 3 000 RUB
		`\*\d{4}\s+(?:Зачислен\s+перевод|Зачисление)\s+{gap}{amount}\s*{rub}`,
	},
}
