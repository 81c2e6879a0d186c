// Package convert pulls native scalars, vectors, strings and maps out of
// dynamic host values, enforcing shape, range and missingness invariants.
//
// All conversions are fallible and return structured errors from the
// errors package; nothing panics on bad data. The scalar numeric policy is:
//
//  1. Length must be exactly 1 (ExpectedNonZeroLength / ExpectedScalar).
//  2. The missing-value sentinel is rejected (MustNotBeNA).
//  3. Integer sources convert with a range check (OutOfLimits).
//  4. Real sources convert to integer targets only when the value is a
//     whole number within epsilon (ExpectedWholeNumber).
//  5. Anything else fails with ExpectedNumeric.
//
// Complex conversion deviates deliberately: a missing value converts to the
// complex NA element instead of failing, matching the host's treatment of
// complex missingness.
//
// Conversions are read-only and allocate only for owned outputs such as
// Strings, Slice copies and Map.
package convert
