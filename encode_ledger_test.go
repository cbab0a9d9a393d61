package timevalue

import (
	"strings"
	"testing"
	"time"
)

func TestDecodeLedger(t *testing.T) {
	in := `{"kind":"buy","date":"2023-04-05","amount":1000,"currency":"INR"}
{"kind":"sell","date":"2023-10-12","amount":250.50,"currency":"INR","memo":"partial redemption"}

{"kind":"buy","date":"2023-05-03","amount":1000,"currency":"INR"}
`
	ledger, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if ledger.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ledger.Len())
	}
	// decoded out of order, the ledger must still be chronological
	if got, want := ledger.Earliest(), NewDate(2023, time.April, 5); got != want {
		t.Errorf("Earliest() = %s, want %s", got, want)
	}
	if got := ledger.TotalSold(); !got.Equal(INR(250.50)) {
		t.Errorf("TotalSold() = %s, want %s", got, INR(250.50))
	}
}

func TestDecodeLedger_BadInput(t *testing.T) {
	cases := map[string]string{
		"malformed json": `{"kind":"buy",`,
		"bad date":       `{"kind":"buy","date":"05/04/2023","amount":1000}`,
		"bad kind":       `{"kind":"transfer","date":"2023-04-05","amount":1000}`,
		"negative":       `{"kind":"buy","date":"2023-04-05","amount":-1000}`,
	}
	for name, in := range cases {
		if _, err := DecodeLedger(strings.NewReader(in)); err == nil {
			t.Errorf("DecodeLedger(%s) expected an error", name)
		}
	}
}

func TestEncodeLedger_Canonical(t *testing.T) {
	ledger := NewLedger(
		NewSell(NewDate(2023, time.October, 12), INR(250.5), "partial redemption"),
		NewBuy(NewDate(2023, time.April, 5), INR(1000), ""),
	)

	var b strings.Builder
	if err := EncodeLedger(&b, ledger); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}
	want := `{"kind":"buy","date":"2023-04-05","amount":1000,"currency":"INR"}
{"kind":"sell","date":"2023-10-12","amount":250.5,"currency":"INR","memo":"partial redemption"}
`
	if b.String() != want {
		t.Errorf("EncodeLedger() =\n%s\nwant\n%s", b.String(), want)
	}
}

func TestLedger_CodecRoundTrip(t *testing.T) {
	ledger := NewLedger(
		NewBuy(NewDate(2023, time.April, 5), INR(1000), ""),
		NewBuy(NewDate(2023, time.May, 3), INR(1000), ""),
		NewSell(NewDate(2024, time.January, 10), INR(300), "rebalance"),
	)

	var b strings.Builder
	if err := EncodeLedger(&b, ledger); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}
	decoded, err := DecodeLedger(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if decoded.Len() != ledger.Len() {
		t.Fatalf("round trip Len() = %d, want %d", decoded.Len(), ledger.Len())
	}
	if !decoded.TotalBought().Equal(ledger.TotalBought()) {
		t.Errorf("round trip TotalBought() = %s, want %s", decoded.TotalBought(), ledger.TotalBought())
	}
}
