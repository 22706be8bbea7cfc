// Package config resolves brew parameters from layered sources: the
// built-in defaults, parameter sets from the user's config file,
// WORT_* environment variables and explicit overrides.
//
// The result is a plain key → value mapping that brew.DecodeParams turns
// into typed parameters. Nothing here writes to disk unless Write is
// called.
package config
