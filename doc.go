// Package timevalue computes investment performance figures from dated
// buy/sell transaction histories. It is designed to be a pure, local
// calculation engine: callers supply transactions, rates and dates, and get
// back immutable result values.
//
// The core functionalities include:
//   - Compound Interest: accruing fixed-income holdings with the periodic
//     compound formula over actual day counts.
//   - Recurring Deposits: simulating financial-year bounded accounts (PPF
//     style) with monthly-accrued, annually-credited interest and the
//     minimum-balance-before-the-5th accrual rule.
//   - XIRR: money-weighted annualized return over irregular cash flows,
//     solved by Newton-Raphson with a bisection fallback.
//   - Ledger Codec: encoding and decoding transaction histories to and from
//     a human-readable, version-controllable JSONL format.
//
// The engine owns no persistence, network access or formatting; those
// concerns belong to the `tvc` command-line tool built on top of it.
package timevalue
