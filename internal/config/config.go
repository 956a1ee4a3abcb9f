// Package config defines the kong CLI root and the option groups shared
// between commands.
package config

import (
	"github.com/Alia5/routecov/internal/cmd"
)

// CLI is the kong root. Values resolve from flags, then ROUTECOV_* env vars,
// then configuration files.
type CLI struct {
	ConfigFile string    `name:"config" help:"Configuration file (json, yaml or toml)" type:"path" env:"ROUTECOV_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`

	Check  cmd.Check         `cmd:"" default:"1" help:"Compare the router tree against the API contract (default)"`
	Routes cmd.Routes        `cmd:"" help:"Print the endpoints resolved from the router tree"`
	Config cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"warn" env:"ROUTECOV_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" type:"path" env:"ROUTECOV_LOG_FILE"`
}
