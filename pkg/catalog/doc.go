// Package catalog holds the static reference data a recipe draws on:
// fermentable extract potentials and culture attenuation ranges.
//
// Entries are looked up by key (e.g. "AmericanTwoRow", "CaliforniaAle") or
// by display name, case-insensitively. A miss returns an
// UNKNOWN_INGREDIENT error whose details list the valid keys and the
// closest matches.
package catalog
