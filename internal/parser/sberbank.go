package parser

import "github.com/insightdelivered/bank-notification-parser/internal/models"

var sberbank = BankDef{
	Name:     "Сбербанк",
	Type:     models.BankSberbank,
	Aliases:  []string{"Sberbank", "СБЕР", "Сбер"},
	Packages: []string{"ru.sberbankmobile", "ru.sberbank", "ru.sberbank.android"},
	Senders:  []string{"900", "SBERBANK"},
	Patterns: []string{
		// СЧЁТ2538 25.07 16:37 зачисление 5000р от Test Client Баланс: 125000.50р
		`СЧ[ЁЕ]Т\d+\s+\d{1,2}\.\d{1,2}\s+\d{1,2}:\d{2}\s+зачисление\s+{amount}\s*{rub}\s+от\s+{sender}\s+Баланс:\s*{balance}\s*р`,
		// СБЕРБАНК. Перевод 15000р от ИВАН И. Баланс: 25000р
		`СБЕРБАНК\.\s*(?:Перевод|Пополнение)\s+{amount}\s*{rub}\s+от\s+{sender}\s*Баланс:\s*{balance}\s*р`,
		// Сбербанк | Пополнение на 300 ₽, счет RUB. Рамазан Г. Доступно 5 838 ₽
		`Сбербанк\s*\|\s*Пополнение\s+на\s+{amount}\s*₽[^.]*\.\s*{sender}\s+Доступно\s+{balance}\s*₽`,
		// СЧЁТ6334 08.05.25 зачислен перевод по СБП 25000р из Альфа-Банк от МАКСИМ ИВАНОВИЧ Е. Сообщение: ...
		`СЧ[ЁЕ]Т\d+\s+\d{1,2}\.\d{1,2}\.\d{2}\s+зачислен\s+перевод\s+по\s+СБП\s+{amount}\s*р\s+из\s+[А-ЯЁа-яёA-Za-z\s-]+?\s+от\s+{sender}\s*Сообщение:`,
		// СЧЁТ*1234 12:34 зачислен перевод по СБП 7000р из ТИНЬКОФФ БАНК Иван Иванов Баланс: 50000р
		`СЧ[ЁЕ]Т\*?\d+\s+\d{1,2}:\d{2}\s+зачислен\s+перевод\s+по\s+СБП\s+{amount}\s*р\s+из\s+.+?\s+Баланс:\s*{balance}\s*р`,
		// СЧЁТ5154 14:59 Перевод из РНКБ Банк +45677р от ЕВГЕНИЙ Г. Баланс: 45677р
		`СЧ[ЁЕ]Т\d+\s+\d{1,2}:\d{2}\s+Перевод\s+из\s+[А-ЯЁа-яёA-Za-z\s-]+?\s*\+?{amount}\s*р\s+от\s+{sender}\s*Баланс:\s*{balance}\s*р`,
		// MIR-0441 13:49 Перевод 3000р от Александр Е. Баланс: 3363.48р
		`MIR-\d+\s+\d{1,2}:\d{2}\s+Перевод\s+{amount}\s*р\s+от\s+{sender}\s*Баланс:\s*{balance}\s*р`,
		// MIR-0441 23:03 зачисление 5005р C2C AMOBILE Баланс: 5403.29р
		`MIR-\d+\s+\d{1,2}:\d{2}\s+зачисление\s+{amount}\s*р\s+.*?Баланс:\s*{balance}\s*р`,
		// ПЛАТ.СЧЕТ6334 14:09 Роман Н. перевел(а) вам 10 000р.
		`ПЛАТ\.?СЧ[ЁЕ]Т\d+\s+\d{1,2}:\d{2}\s+{sender}\s+перевел\(а\)\s+вам\s+{amount}\s*р`,
		// СЧЁТ6334 зачислен перевод по СБП 1200р
		`СЧ[ЁЕ]Т\*?\d+.*?зачислен\s+перевод\s+по\s+СБП\s+{amount}\s*{rub}`,
		// VISA1234 25.07.24 12:34 зачисление 5000р
		`(?:VISA|MASTERCARD|MIR|МИР)-?\d{4}\s+\d{1,2}\.\d{1,2}(?:\.\d{2,4})?(?:\s+\d{1,2}:\d{2})?\s+зачисление\s+{amount}\s*р`,
	},
	Fallback: []string{
		// Перевод 14000р от ИВАН И. Баланс: 45320р
		`(?:Перевод|Пополнение|зачисление)\s+\+?{amount}\s*{rub}\.?\s+от\s+{sender}(?:\s+(?:Баланс|Доступно):?\s*{balance}\s*{rub}?)?\.?$`,
		// Вам поступило 500 ₽
		`Вам\s+(?:перевели|поступило?)\s+{amount}\s*{rub}`,
	},
}
