package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var otpBank = BankDef{
	Name:     "ОТП Банк",
	Type:     models.BankOTP,
	Aliases:  []string{"OTP Bank", "ОТП"},
	Packages: []string{"ru.otpbank", "ru.otpbank.mobile"},
	Senders:  []string{"OTPBank", "OTP"},
	Patterns: []string{
		// ОТП Банк | Пополнение на 1 000 ₽, счет RUB. Иван И. Доступно 5 000 ₽
		`ОТП\s+Банк\s*\|\s*Пополнение\s+на\s+{amount}\s*{rub},\s*сч[её]т\s+RUB\.\s*{sender}\s+Доступно\s+{balance}\s*{rub}`,
		// Зачисление 10 000 ₽. Отправитель: ООО КОМПАНИЯ
		`Зачисление\s+{amount}\s*{rub}\.?\s+Отправитель:\s*{sender}{stop}`,
	},
	Fallback: []string{
		// Зачисление 2 000 руб
		`(?:Пополнение|Перевод|Поступление|Зачисление)\s+(?:на\s+)?{amount}\s*{rub}`,
	},
}
