package assetbloc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountCmd is a specialized struct to read a ledger amount in two fields.
// we could use json "inline" but it would work for some transactions not all.
type amountCmd struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountCmd) Money() Money {
	return M(a.Amount, a.Currency)
}

// DecodeLedger reads transactions from a stream of JSONL data and replays them
// through Apply, so a decoded ledger always satisfies the same invariants as a
// live one. A line that fails validation fails the whole decode.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		tx, err := decodeTransaction(lineBytes)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := ledger.Apply(tx); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// decodeTransaction identifies the command on a JSONL line and unmarshals it
// into the matching transaction struct.
func decodeTransaction(lineBytes []byte) (Transaction, error) {
	var identifier struct {
		Command CommandType `json:"command"`
	}
	if err := json.Unmarshal(lineBytes, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify command in line %q: %w", string(lineBytes), err)
	}

	var decodedTx Transaction
	var err error

	switch identifier.Command {
	case CmdInit:
		var tx Init
		err = json.Unmarshal(lineBytes, &tx)
		decodedTx = tx
	case CmdAddAsset:
		var tx AddAsset
		err = json.Unmarshal(lineBytes, &tx)
		decodedTx = tx
	case CmdEditAsset:
		var tx EditAsset
		err = json.Unmarshal(lineBytes, &tx)
		decodedTx = tx
	case CmdDeposit:
		var tx Deposit
		err = json.Unmarshal(lineBytes, &tx)
		decodedTx = tx
	case CmdWithdraw:
		var tx Withdraw
		err = json.Unmarshal(lineBytes, &tx)
		decodedTx = tx
	case CmdBuy:
		var tx Buy
		err = json.Unmarshal(lineBytes, &tx)
		decodedTx = tx
	case CmdSell:
		var tx Sell
		err = json.Unmarshal(lineBytes, &tx)
		decodedTx = tx
	case CmdLock:
		var tx Lock
		err = json.Unmarshal(lineBytes, &tx)
		decodedTx = tx
	case CmdUnlock:
		var tx Unlock
		err = json.Unmarshal(lineBytes, &tx)
		decodedTx = tx
	case CmdRent:
		var tx Rent
		err = json.Unmarshal(lineBytes, &tx)
		decodedTx = tx
	case CmdKickOut:
		var tx KickOut
		err = json.Unmarshal(lineBytes, &tx)
		decodedTx = tx
	default:
		err = fmt.Errorf("unknown transaction command: %q", identifier.Command)
	}

	if err != nil {
		return nil, err
	}
	return decodedTx, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	// Write the JSON data followed by a newline to create the JSONL format.
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger's transactions to an io.Writer in JSONL
// format, in application order. Field order within each line is stable, so
// encoding the same ledger twice yields byte-identical output.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	for _, tx := range ledger.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
