// Package models defines the core domain models for billflow.
//
// # Models
//
//   - Bill: a vendor invoice tracked through approval and payment
//   - Activity: an immutable audit-log entry on a bill
//
// # Design Principles
//
//  1. **Owned data**: callers receive copies, never shared references;
//     all mutation flows through the billstore package
//  2. **Append-only history**: activities are never reordered, mutated,
//     or truncated after insertion
//  3. **Stored vs effective status**: the overdue condition is derived at
//     view time and never written back to a bill
//  4. **No clocks here**: anything time-dependent takes the current time
//     as an explicit parameter so tests stay deterministic
package models
