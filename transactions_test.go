package timevalue

import (
	"testing"
	"time"
)

func INR[T float32 | float64 | int | int32 | int64](v T) Money {
	return M(float64(v), "INR")
}

func TestLedger_SortsDefensively(t *testing.T) {
	ledger := NewLedger(
		NewBuy(NewDate(2024, time.March, 1), INR(300), ""),
		NewBuy(NewDate(2023, time.April, 1), INR(100), ""),
		NewBuy(NewDate(2023, time.October, 1), INR(200), ""),
	)

	var dates []Date
	for tx := range ledger.All() {
		dates = append(dates, tx.Date)
	}
	for i := 1; i < len(dates); i++ {
		if dates[i].Before(dates[i-1]) {
			t.Fatalf("ledger not chronological: %s before %s", dates[i], dates[i-1])
		}
	}
	if got, want := ledger.Earliest(), NewDate(2023, time.April, 1); got != want {
		t.Errorf("Earliest() = %s, want %s", got, want)
	}
}

func TestLedger_SortIsStable(t *testing.T) {
	on := NewDate(2023, time.April, 5)
	ledger := NewLedger(
		NewBuy(on, INR(1), "first"),
		NewBuy(on, INR(2), "second"),
		NewBuy(on, INR(3), "third"),
	)
	var memos []string
	for tx := range ledger.All() {
		memos = append(memos, tx.Memo)
	}
	want := []string{"first", "second", "third"}
	for i := range want {
		if memos[i] != want[i] {
			t.Fatalf("same-day order = %v, want %v", memos, want)
		}
	}
}

func TestLedger_Totals(t *testing.T) {
	ledger := NewLedger(
		NewBuy(NewDate(2023, time.April, 1), INR(1000), ""),
		NewBuy(NewDate(2023, time.May, 1), INR(2500), ""),
		NewSell(NewDate(2023, time.June, 1), INR(500), ""),
	)
	if got := ledger.TotalBought(); !got.Equal(INR(3500)) {
		t.Errorf("TotalBought() = %s, want %s", got, INR(3500))
	}
	if got := ledger.TotalSold(); !got.Equal(INR(500)) {
		t.Errorf("TotalSold() = %s, want %s", got, INR(500))
	}
	if got := ledger.Currency(); got != "INR" {
		t.Errorf("Currency() = %q, want %q", got, "INR")
	}
}

func TestTransaction_Validate(t *testing.T) {
	tx := Transaction{Kind: "short", Amount: INR(10)}
	if err := tx.Validate(); err == nil {
		t.Error("Validate() accepted an unknown kind")
	}

	tx = Transaction{Kind: Buy, Amount: INR(-10)}
	if err := tx.Validate(); err == nil {
		t.Error("Validate() accepted a negative magnitude")
	}

	tx = Transaction{Kind: Sell, Amount: INR(10)}
	if err := tx.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if tx.Date.IsZero() {
		t.Error("Validate() should default a zero date to today")
	}
}

func TestParseTxKind(t *testing.T) {
	if k, err := ParseTxKind("buy"); err != nil || k != Buy {
		t.Errorf("ParseTxKind(buy) = %v, %v", k, err)
	}
	if k, err := ParseTxKind("sell"); err != nil || k != Sell {
		t.Errorf("ParseTxKind(sell) = %v, %v", k, err)
	}
	if _, err := ParseTxKind("hold"); err == nil {
		t.Error("ParseTxKind(hold) expected an error")
	}
}
