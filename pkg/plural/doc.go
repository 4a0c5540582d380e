// Package plural implements CLDR plural category selection for the languages
// supported by the localization engine.
//
// Each language maps to one of a fixed set of rule sets. The operand is a
// float64 so that fractional counts behave like any other number:
//
//	plural.Select("pl", 22)  // few
//	plural.Select("pl", 25)  // many
//	plural.Select("en-US", 1) // one
//
// Languages without a known rule set select Other for every operand.
package plural
