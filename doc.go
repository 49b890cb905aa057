// Package tradelots computes trade-lot accounting from a broker's export of
// executed orders.
//
// The core functionalities include:
//   - Normalization: raw CSV records become TradeEvent values with a market,
//     a UTC timestamp and option contract multipliers applied.
//   - FIFO lots: every symbol's history is replayed through a first-in
//     first-out queue of long or short lots, expired options being closed at
//     zero on their expiry day.
//   - Currency conversion: USD and AUD amounts are converted with a daily rate
//     table, falling back to the nearest known rate or a fixed default.
//   - Reports: Australian capital gains per financial year, a portfolio P&L
//     summary in a display currency and a bucketed performance series.
//
// Computations never fail. Degraded input is reported through Warning values
// while the numbers fall back to zero or to the documented defaults.
//
// This package serves as the foundational logic for the `tlc` command-line
// tool.
package tradelots
