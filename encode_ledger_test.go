package assetbloc

import (
	"bytes"
	"strings"
	"testing"
)

// fullHistory records one transaction of every command.
func fullHistory(t *testing.T) *Ledger {
	t.Helper()
	ledger := newTestLedger(t)
	err := ledger.Apply(
		NewDeposit(day, "seed money", "alice", EUR(2)),
		NewDeposit(day, "", "bob", EUR(1)),
		NewBuy(day, "", "alice", 1, EUR(1)),
		NewBuy(day, "", "bob", 1, EUR(0.5)),
		NewLock(day, "", "alice", 1, EUR(0.5), 2),
		NewUnlock(day, "", "alice", 1),
		NewSell(day, "", "bob", 1, EUR(0.25)),
		NewRent(day, "", "carol", 1, EUR(1)),
		NewKickOut(day, "", "admin", 1),
		NewWithdraw(day, "", "alice", EUR(0.5)),
		NewEditAsset(day, "appraisal", "admin", 1, "", "", EUR(3), 0, NO(0)),
	)
	if err != nil {
		t.Fatalf("cannot build history: %v", err)
	}
	return ledger
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ledger := fullHistory(t)

	var first bytes.Buffer
	if err := EncodeLedger(&first, ledger); err != nil {
		t.Fatalf("EncodeLedger() error: %v", err)
	}

	decoded, err := DecodeLedger(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("DecodeLedger() error: %v", err)
	}

	var second bytes.Buffer
	if err := EncodeLedger(&second, decoded); err != nil {
		t.Fatalf("EncodeLedger() after decode error: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("re-encoded ledger differs:\nfirst:\n%ssecond:\n%s", first.String(), second.String())
	}

	// The decoded transactions are the same, and the replayed state matches.
	var want, got []Transaction
	for _, tx := range ledger.Transactions() {
		want = append(want, tx)
	}
	for _, tx := range decoded.Transactions() {
		got = append(got, tx)
	}
	if len(got) != len(want) {
		t.Fatalf("decoded %d transactions, want %d", len(got), len(want))
	}
	for i := range want {
		if !want[i].Equal(got[i]) {
			t.Errorf("transaction %d = %#v, want %#v", i, got[i], want[i])
		}
	}

	wantBalance, _ := ledger.Balance("alice")
	gotBalance, _ := decoded.Balance("alice")
	if !gotBalance.Equal(wantBalance) {
		t.Errorf("replayed balance = %v, want %v", gotBalance, wantBalance)
	}
	wantHolding, _ := ledger.Shareholding("bob", 1)
	gotHolding, _ := decoded.Shareholding("bob", 1)
	if !gotHolding.Held.Equal(wantHolding.Held) {
		t.Errorf("replayed holding = %v, want %v", gotHolding.Held, wantHolding.Held)
	}
}

// TestDecodeReplaysStrictly checks that decoding validates each line against
// the replayed state, rejecting histories a live ledger would have refused.
func TestDecodeReplaysStrictly(t *testing.T) {
	input := `{"command":"init","date":"2025-06-01","actor":"admin","currency":"EUR"}
{"command":"buy","date":"2025-06-01","actor":"alice","asset":99,"currency":"EUR","amount":1}
`
	_, err := DecodeLedger(strings.NewReader(input))
	if err == nil {
		t.Fatal("DecodeLedger succeeded, want an error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("DecodeLedger error = %v, want it to point at line 2", err)
	}
}

func TestDecodeRejectsUnknownCommand(t *testing.T) {
	input := `{"command":"teleport","date":"2025-06-01","actor":"admin"}
`
	_, err := DecodeLedger(strings.NewReader(input))
	if err == nil || !strings.Contains(err.Error(), "unknown transaction command") {
		t.Errorf("DecodeLedger error = %v, want unknown command", err)
	}
}

func TestDecodeSkipsEmptyLines(t *testing.T) {
	input := `{"command":"init","date":"2025-06-01","actor":"admin","currency":"EUR"}

{"command":"deposit","date":"2025-06-01","actor":"alice","currency":"EUR","amount":2}
`
	ledger, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger() error: %v", err)
	}
	balance, err := ledger.Balance("alice")
	if err != nil {
		t.Fatalf("Balance() error: %v", err)
	}
	if !balance.Equal(EUR(2)) {
		t.Errorf("Balance = %v, want %v", balance, EUR(2))
	}
}
