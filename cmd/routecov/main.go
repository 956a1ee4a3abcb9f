package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Alia5/routecov/internal/config"
	"github.com/Alia5/routecov/internal/configpaths"
	"github.com/Alia5/routecov/internal/coverage"
	"github.com/Alia5/routecov/internal/log"
	"github.com/Alia5/routecov/internal/util"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; variables already set in the environment win.
	_ = godotenv.Load()

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("routecov"),
		kong.Description("Check an axum router tree against the API contract"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}

	ctx.Bind(logger)
	err = ctx.Run()
	for _, c := range closeFiles {
		_ = c.Close()
	}

	var below *coverage.ThresholdError
	if errors.As(err, &below) {
		fmt.Fprintf(os.Stderr, "\n%s: %s\n", util.Red("FAIL", util.IsTerminal(os.Stderr)), below)
		os.Exit(1)
	}
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("ROUTECOV_CONFIG")
}
