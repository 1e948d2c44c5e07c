// Package config loads server settings from the environment and an optional
// config file.
//
// Every key can be set through an environment variable: the key upper-cased,
// dots replaced by underscores, prefixed with GAMERESULT_. For example
// roster.players is GAMERESULT_ROSTER_PLAYERS and bands.score.min is
// GAMERESULT_BANDS_SCORE_MIN. Environment variables override the file named by
// GAMERESULT_CONFIG_FILE (YAML, JSON or TOML by extension), which overrides the
// built-in defaults.
package config
