// SPDX-License-Identifier: MIT

// Package config loads analysis settings from TOML files and ATOMLATH_*
// environment variables through viper, validates them with
// go-playground/validator and renders them back to TOML.
//
// Keys are dotted section paths, e.g. neighbors.method or solids.threshold;
// the matching environment variable is ATOMLATH_NEIGHBORS_METHOD.
package config
