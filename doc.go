// Package assetbloc provides the accounting engine for a fractional
// ownership ledger: users deposit funds, buy percentage-denominated shares
// of registered assets, optionally lock those shares, collect pro-rata
// rental income, and withdraw their balance.
//
// The core functionalities include:
//   - Ledger Management: every operation (deposits, withdrawals, share
//     purchases and sales, locks, rent collections, evictions) is recorded
//     as a transaction in an immutable, chronological record, and the
//     ledger state is the result of applying that record.
//   - Asset Registry: registering and editing assets, each divided into
//     100 percentage shares, with a valuation and a rent amount.
//   - Trading Engine: buying and selling shares against an asset's unsold
//     supply, with funds and supply constraints enforced atomically.
//   - Rental Engine: exact-amount rent collection and proportional profit
//     distribution to the asset's shareholders.
//   - Treasury: the vault reconciles external value received against
//     per-account balances, and withdrawals finalize internal bookkeeping
//     before any external payout is initiated.
//   - Data Persistence: encoding and decoding the transaction record to
//     and from a human-readable, version-controllable JSONL file.
//
// All quantities are exact decimals; the ledger is a single-writer object,
// so operations apply one at a time and never interleave. This package
// serves as the foundational logic for the `abc` command-line tool.
package assetbloc
