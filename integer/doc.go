// Package integer provides non-negative binary numbers built from nested
// bit nodes, and the arithmetic defined structurally over them.
//
// A number is a chain of bit nodes, least significant bit first, closed by
// the Zero terminator:
//
//	Zero       = 0
//	B0{Rest}   = 2 * Rest
//	B1{Rest}   = 2 * Rest + 1
//
// For example 5 (0b101) is:
//
//	B1{B0{B1{Zero{}}}}
//
//	| bit 0 | bit 1 | bit 2 | end  |
//	|-------|-------|-------|------|
//	| B1    | B0    | B1    | Zero |
//	|-------|-------|-------|------|
//
// A nil Rest reads as Zero, so B1{} is the number 1.
//
// # Normalization
//
// B0 nodes above the highest B1 add nothing to the value. B0{B1{B0{}}} and
// B0{B1{}} are both 2. A number is normalized when it has no such padding,
// which makes Zero the only normalized zero and every other normalized
// number end in B1. Normalize strips the padding.
//
// Add, Sub, Mul, Eq, Succ and Pred accept padded numbers. Add, Mul and
// OverflowingSub do not normalize their results; Sub always does.
//
// # Shifting
//
// Shl and Shr step the shift amount down one predecessor at a time until it
// reaches Zero, renormalizing after every step. The amount must therefore
// start normalized. Shl and Shr normalize it for you; ShlRaw and ShrRaw do
// not and silently compute the wrong result for a padded amount such as
// B0{Zero{}}.
//
// # Values
//
// Numbers are immutable. Operations build new nodes and may share unchanged
// subtrees of their inputs, so values are safe for concurrent use.
package integer
