// Package config loads shapecalc settings from flags, SHAPECALC_*
// environment variables, an optional config file and built-in defaults,
// and validates the result before any command runs.
package config
