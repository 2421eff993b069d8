package parser

import (
	"strings"
	"sync"
	"testing"

	"github.com/insightdelivered/bank-notification-parser/internal/models"
	"github.com/shopspring/decimal"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()

	names := reg.BankNames()
	if len(names) != len(Banks()) {
		t.Fatalf("banks: got %d, want %d", len(names), len(Banks()))
	}
	if names[0] != "Тинькофф" {
		t.Errorf("first bank: got %q, want Тинькофф", names[0])
	}
	if last := names[len(names)-1]; last != "GenericSms" {
		t.Errorf("last bank: got %q, want GenericSms", last)
	}

	if reg != Default() {
		t.Error("Default built more than one registry")
	}
}

func TestParseMessage(t *testing.T) {
	reg := Default()

	tests := []struct {
		name        string
		message     string
		packageName string
		senderCode  string
		wantBank    string
		wantType    models.BankType
		wantAmount  string
		wantSender  string
		wantBalance string
	}{
		{
			name:        "package hint",
			message:     "Вам перевели 1 500 ₽",
			packageName: "com.idamob.tinkoff.android",
			wantBank:    "Тинькофф",
			wantType:    models.BankTinkoff,
			wantAmount:  "1500",
		},
		{
			name:        "package hint ignores case",
			message:     "Вам перевели 1 500 ₽",
			packageName: "  COM.IDAMOB.TINKOFF.ANDROID ",
			wantBank:    "Тинькофф",
			wantType:    models.BankTinkoff,
			wantAmount:  "1500",
		},
		{
			name:        "sender code hint",
			message:     "СЧЁТ5154 16:04 зачисление 50 000р ПСБ Баланс: 50 001.2р",
			senderCode:  "PSB",
			wantBank:    "ПСБ",
			wantType:    models.BankPSB,
			wantAmount:  "50000",
			wantBalance: "50001.2",
		},
		{
			name:       "no hints",
			message:    "*0977 Зачислен перевод по СБП 12264RUB 16:54 от Владимир Олегович Л",
			wantBank:   "Банк Санкт-Петербург",
			wantType:   models.BankSPB,
			wantAmount: "12264",
			wantSender: "Владимир Олегович Л",
		},
		{
			name:        "wrong package hint falls back",
			message:     "ВТБ Онлайн | Поступление 30000р Счет*5715 от АНИ Н. Баланс 30053.47р 22:42",
			packageName: "com.idamob.tinkoff.android",
			wantBank:    "ВТБ",
			wantType:    models.BankVTB,
			wantAmount:  "30000",
			wantSender:  "Ани Н.",
			wantBalance: "30053.47",
		},
		{
			name:        "unknown hints are ignored",
			message:     "ВТБ: зачисление 10000р. Отправитель: ООО КОМПАНИЯ",
			packageName: "com.example.unknown",
			senderCode:  "NOBODY",
			wantBank:    "ВТБ",
			wantType:    models.BankVTB,
			wantAmount:  "10000",
			wantSender:  "Ооо Компания",
		},
		{
			name:        "sender hint wins over package hint",
			message:     "Пополнение, счет RUB. 2 000 RUB. Ольга М. Доступно 5 100 RUB",
			packageName: "ru.otpbank",
			senderCode:  "Tinkoff",
			wantBank:    "Тинькофф",
			wantType:    models.BankTinkoff,
			wantAmount:  "2000",
			wantSender:  "Ольга М.",
			wantBalance: "5100",
		},
		{
			name:        "non-breaking spaces",
			message:     "Вам перевели 1\u00a0500\u00a0₽",
			packageName: "ru.tinkoff",
			wantBank:    "Тинькофф",
			wantType:    models.BankTinkoff,
			wantAmount:  "1500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := reg.ParseMessage(tt.message, tt.packageName, tt.senderCode)
			if !ok {
				t.Fatalf("ParseMessage(%q) found nothing", tt.message)
			}
			if got := res.Parser.BankName(); got != tt.wantBank {
				t.Errorf("bank: got %q, want %q", got, tt.wantBank)
			}
			if got := res.Parser.BankType(); got != tt.wantType {
				t.Errorf("bank type: got %q, want %q", got, tt.wantType)
			}

			tx := res.Transaction
			if want := decimal.RequireFromString(tt.wantAmount); !tx.Amount.Equal(want) {
				t.Errorf("amount: got %s, want %s", tx.Amount, want)
			}
			if tx.SenderName != tt.wantSender {
				t.Errorf("sender: got %q, want %q", tx.SenderName, tt.wantSender)
			}
			switch {
			case tt.wantBalance == "" && tx.HasBalance():
				t.Errorf("balance: got %s, want none", tx.Balance.Decimal)
			case tt.wantBalance != "" && !tx.HasBalance():
				t.Errorf("balance: got none, want %s", tt.wantBalance)
			case tt.wantBalance != "" && !tx.Balance.Decimal.Equal(decimal.RequireFromString(tt.wantBalance)):
				t.Errorf("balance: got %s, want %s", tx.Balance.Decimal, tt.wantBalance)
			}
		})
	}
}

func TestParseMessageNoMatch(t *testing.T) {
	reg := Default()

	for _, msg := range []string{"hello world", "", "Ваш код подтверждения: 4821"} {
		if res, ok := reg.ParseMessage(msg, "", ""); ok {
			t.Errorf("ParseMessage(%q) matched %s", msg, res.Parser.BankName())
		}
		if reg.IsBankMessage(msg, "") {
			t.Errorf("IsBankMessage(%q) = true", msg)
		}
	}
}

func TestIsBankMessage(t *testing.T) {
	reg := Default()

	if !reg.IsBankMessage("Вам перевели 1 500 ₽", "com.idamob.tinkoff.android") {
		t.Error("hinted Tinkoff message not recognised")
	}
	if !reg.IsBankMessage("*0977 Зачислен перевод по СБП 12264RUB 16:54 от Владимир Олегович Л", "") {
		t.Error("unhinted BSPB message not recognised")
	}
}

func TestParseMessageFallsBackWhenHintedParseFails(t *testing.T) {
	reg, err := New(
		BankDef{Name: "A", Type: "A", Packages: []string{"com.a"}, Patterns: []string{`Платеж\s+{amount}`}},
		BankDef{Name: "B", Type: "B", Packages: []string{"com.b"}, Patterns: []string{`итого\s+{amount}\s*руб`}},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// A recognises the message but its amount is zero, so B gets a turn.
	res, ok := reg.ParseMessage("Платеж 0 руб, итого 15 руб", "com.a", "")
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Parser.BankName() != "B" {
		t.Errorf("bank: got %q, want B", res.Parser.BankName())
	}
	if !res.Transaction.Amount.Equal(decimal.NewFromInt(15)) {
		t.Errorf("amount: got %s, want 15", res.Transaction.Amount)
	}
}

func TestNewRejectsCollisions(t *testing.T) {
	base := BankDef{Name: "A", Packages: []string{"com.a"}, Senders: []string{"AAA"}, Patterns: []string{`{amount}`}}

	tests := []struct {
		name    string
		other   BankDef
		wantErr string
	}{
		{
			name:    "duplicate name",
			other:   BankDef{Name: "A", Patterns: []string{`{amount}`}},
			wantErr: "registered twice",
		},
		{
			name:    "duplicate package",
			other:   BankDef{Name: "B", Packages: []string{" COM.A"}, Patterns: []string{`{amount}`}},
			wantErr: "package",
		},
		{
			name:    "duplicate sender code",
			other:   BankDef{Name: "B", Senders: []string{"aaa"}, Patterns: []string{`{amount}`}},
			wantErr: "sender code",
		},
		{
			name:    "empty package",
			other:   BankDef{Name: "B", Packages: []string{" "}, Patterns: []string{`{amount}`}},
			wantErr: "empty package",
		},
		{
			name:    "bad pattern",
			other:   BankDef{Name: "B", Patterns: []string{`[{amount}`}},
			wantErr: "compile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(base, tt.other)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	reg := Default()

	tests := []struct {
		query string
		want  string
		found bool
	}{
		{"Сбербанк", "Сбербанк", true},
		{"sberbank", "Сбербанк", true},
		{"SBERBANK", "Сбербанк", true},
		{"t-bank", "Тинькофф", true},
		{"ПРОМСВЯЗЬБАНК", "ПСБ", true},
		{"bspb", "Банк Санкт-Петербург", true},
		{"Unknown Bank", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			p, ok := reg.Lookup(tt.query)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.query, ok, tt.found)
			}
			if ok && p.BankName() != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.query, p.BankName(), tt.want)
			}
		})
	}

	if _, ok := reg.Parser("сбербанк"); ok {
		t.Error("Parser should match the exact bank name only")
	}
	if p, ok := reg.ParserByPackage("ru.vtb24"); !ok || p.BankName() != "ВТБ" {
		t.Error("ParserByPackage(ru.vtb24) did not return ВТБ")
	}
	if p, ok := reg.ParserBySender("900"); !ok || p.BankName() != "Сбербанк" {
		t.Error("ParserBySender(900) did not return Сбербанк")
	}
}

func TestBuiltinClaimsAreUnique(t *testing.T) {
	packages := make(map[string]string)
	senders := make(map[string]string)
	for _, p := range Default().Parsers() {
		for _, pkg := range p.PackageNames() {
			if owner, ok := packages[pkg]; ok {
				t.Errorf("package %q owned by %q and %q", pkg, owner, p.BankName())
			}
			packages[pkg] = p.BankName()
		}
		for _, code := range p.SenderCodes() {
			if owner, ok := senders[code]; ok {
				t.Errorf("sender %q owned by %q and %q", code, owner, p.BankName())
			}
			senders[code] = p.BankName()
		}
	}
}

func TestParseMessageConcurrent(t *testing.T) {
	reg := Default()
	messages := []string{
		"Вам перевели 1 500 ₽",
		"*0977 Зачислен перевод по СБП 12264RUB 16:54 от Владимир Олегович Л",
		"ВТБ: зачисление 10000р. Отправитель: ООО КОМПАНИЯ",
		"hello world",
	}

	type outcome struct {
		bank   string
		amount string
		ok     bool
	}
	run := func(msg string) outcome {
		res, ok := reg.ParseMessage(msg, "", "")
		if !ok {
			return outcome{}
		}
		return outcome{res.Parser.BankName(), res.Transaction.Amount.String(), true}
	}

	want := make([]outcome, len(messages))
	for i, msg := range messages {
		want[i] = run(msg)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		for i, msg := range messages {
			wg.Add(1)
			go func(i int, msg string) {
				defer wg.Done()
				if got := run(msg); got != want[i] {
					t.Errorf("concurrent ParseMessage(%q) = %+v, want %+v", msg, got, want[i])
				}
			}(i, msg)
		}
	}
	wg.Wait()
}

func TestParseMessageBlind(t *testing.T) {
	reg := Default()

	for _, tt := range bankMessages {
		if tt.fallback {
			continue
		}
		t.Run(tt.bank+"/"+tt.message, func(t *testing.T) {
			res, ok := reg.ParseMessage(tt.message, "", "")
			if !ok {
				t.Fatalf("ParseMessage(%q) found nothing", tt.message)
			}
			if got := res.Parser.BankName(); got != tt.bank {
				t.Fatalf("bank: got %q, want %q", got, tt.bank)
			}
			checkTransaction(t, res.Transaction, tt.amount, tt.sender, tt.balance)
		})
	}
}

func TestDetectAgreesWithParse(t *testing.T) {
	reg := Default()

	for _, p := range reg.Parsers() {
		for _, tt := range bankMessages {
			if _, ok := p.Parse(tt.message); ok && !p.Detect(tt.message) {
				t.Errorf("%s parses but does not detect %q", p.BankName(), tt.message)
			}
		}
	}
}

func TestParseMessageAmountBesideDigits(t *testing.T) {
	reg := Default()

	tests := []struct {
		name    string
		message string
		amount  string
		balance string
	}{
		{"card suffix", "Пополнение *1234 5 000 ₽", "5000", ""},
		{"time", "Пополнение 14:09 500 ₽", "500", ""},
		{"date", "Зачисление 25.07 1 500 ₽", "1500", ""},
		{"time after amount", "*0977 Зачисление 5000RUB 12:01 Баланс 17264RUB", "5000", "17264"},
		{"card before date", "СЧЁТ5154 16:04 зачисление 50 000р ПСБ Баланс: 50 001.2р", "50000", "50001.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := reg.ParseMessage(tt.message, "", "")
			if !ok {
				t.Fatalf("ParseMessage(%q) found nothing", tt.message)
			}
			if want := decimal.RequireFromString(tt.amount); !res.Transaction.Amount.Equal(want) {
				t.Errorf("amount: got %s, want %s", res.Transaction.Amount, want)
			}
			if tt.balance != "" && !res.Transaction.Balance.Decimal.Equal(decimal.RequireFromString(tt.balance)) {
				t.Errorf("balance: got %s, want %s", res.Transaction.Balance.Decimal, tt.balance)
			}
		})
	}
}

func TestParseMessagePrefersFormatsOverEarlierFallbacks(t *testing.T) {
	reg, err := New(
		BankDef{Name: "A", Type: "A", Fallback: []string{`Зачисление\s+{amount}`}},
		BankDef{Name: "B", Type: "B", Patterns: []string{`Зачисление\s+{amount}\s*₽\s+от\s+{sender}`}},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, ok := reg.ParseMessage("Зачисление 700 ₽ от Сергей К.", "", "")
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Parser.BankName() != "B" {
		t.Errorf("bank: got %q, want B", res.Parser.BankName())
	}
	if res.Transaction.SenderName != "Сергей К." {
		t.Errorf("sender: got %q, want Сергей К.", res.Transaction.SenderName)
	}

	res, ok = reg.ParseMessage("Зачисление 700", "", "")
	if !ok || res.Parser.BankName() != "A" {
		t.Errorf("fallback of A not reached: ok=%v", ok)
	}
}
