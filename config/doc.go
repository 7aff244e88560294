// Package config loads memory-sink settings from YAML files and
// MEMSINK_* environment variables, validates them, and builds
// configured sink instances.
package config
