package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

// genericSMS catches the two common phrasings of a credit from any bank. It
// owns no packages or sender codes and has fallbacks only, so a blind search
// reaches it after every other bank.
var genericSMS = BankDef{
	Name:    "GenericSms",
	Type:    models.BankGenericSMS,
	Aliases: []string{"GenericSMS", "SMS"},
	Fallback: []string{
		// Пополнение на сумму 500 руб.
		`(?:зачисление|зачислено|зачислен\s+перевод|поступление|пополнение|вам\s+перевели|получен\s+перевод)[^\d]{0,40}?{amount}\s*{rub}`,
		// 5 000 руб. зачислено на счет
		`{amount}\s*{rub}[^\d]{0,40}?(?:зачислен[оаы]?|поступил[оаи]?|получен[оа]?)`,
	},
}
