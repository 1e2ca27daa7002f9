// Package capgains selects which purchase lots of an investment account to
// sell in order to raise a target cash amount while keeping the realized
// capital gains as low as possible.
//
// The core functionalities include:
//   - Account Model: An immutable collection of purchase lots (date, fund,
//     shares, cost basis per share) as imported from a transaction history.
//   - Gain Calculation: Deriving, per lot and against a current price table,
//     the sale amount, the capital gain and the gain ratio used to rank lots
//     by tax efficiency.
//   - Sell Selection: A greedy, ratio-ordered accumulation that stops at the
//     first lot crossing the net-of-tax target and splits that lot into a
//     whole-share partial sale to avoid over-selling.
//   - Data Ingestion: Decoding the account transaction history and the fund
//     price list from their CSV formats.
//
// This package serves as the foundational logic for the `cgs` command-line
// tool; all monetary computations use decimal arithmetic end to end.
package capgains
