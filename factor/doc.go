// Package factor maps native enumerations onto categorical host values.
//
// An enumeration is any integer-backed type that names its variants through
// Levels. Encoding variant k produces a one-element integer vector holding
// code k+1 with the variant names attached as the label set and the
// categorical class mark; codes are one-based because zero and negative
// codes are reserved as illegal in categorical storage. Decoding validates
// the class mark, the label set and the scalar shape before mapping the
// code back.
//
// The label-set value for each enumeration type is built once and shared
// between every encoded value of that type.
package factor
