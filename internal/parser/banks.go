package parser

// Banks returns the built-in bank definitions in registration order. Order
// only matters when no hint identifies the bank: the first bank whose
// formats fit the message wins, so the catch-all GenericSms comes last.
func Banks() []BankDef {
	return []BankDef{
		tinkoff,
		sberbank,
		vtb,
		alfaBank,
		gazprombank,
		ozonBank,
		homeCredit,
		otpBank,
		psb,
		domRF,
		mtsBank,
		uralsib,
		raiffeisen,
		pochtaBank,
		bankSPB,
		rnkb,
		rshb,
		genericSMS,
	}
}
