// Package config loads, normalizes, and validates sanalista configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SANALISTA_LOG_LEVEL. The Config type holds the word-class policy, reader and
// writer switches, run history location and logging settings for one run.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config
