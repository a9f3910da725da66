// Package config manages user-level settings stored at ~/.skillmaker/config.yaml.
// Values resolve from command-line flags, SKILLMAKER_* environment variables
// (optionally seeded from a .env file in the working directory), the config
// file, and finally built-in defaults. Resolve snapshots them into a Settings
// value that the CLI passes explicitly to the generator and validator.
package config
