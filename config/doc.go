// Package config loads the benchmark engine's tunable knobs — the
// Genetic Algorithm's population dynamics, the Exact solver's progress
// interval, Tabu's tenure/iteration budget, and Simulated Annealing's
// cooling schedule — from an optional TOML file (github.com/BurntSushi/
// toml) and from environment variables, optionally sourced from a local
// .env file (github.com/joho/godotenv). Every field has a spec-documented
// default, so an absent file or absent variable is never an error.
package config
