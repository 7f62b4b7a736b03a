// Package aggregate folds parsed games into the two answers of the puzzle.
//
// The feasibility reducer sums the identifiers of games whose every round
// fits within a constraint set. The power reducer derives each game's
// minimum possible cube set (the per-color maximum across its rounds) and
// sums the products of those sets.
//
// Both reducers are pure functions over already-parsed data. All additions
// and multiplications are checked and report model.ErrOverflow instead of
// wrapping silently.
package aggregate
