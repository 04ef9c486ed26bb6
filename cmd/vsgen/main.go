package main

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/Alia5/vsgen/internal/codegen/common"
	"github.com/Alia5/vsgen/internal/config"
	"github.com/Alia5/vsgen/internal/configpaths"
	"github.com/Alia5/vsgen/internal/log"
)

func main() {

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	version, err := common.GetVersion()
	if err != nil {
		version = "unknown"
	}

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("vsgen"),
		kong.Description("Generate NI VeriStand model glue from a channel configuration"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	var console io.Writer = os.Stdout
	if cli.PrintsToStdout(ctx.Command()) {
		console = os.Stderr
	}
	logger, closeFiles, err := log.SetupLogger(log.Options{
		Level:  cli.Log.Level,
		Format: cli.Log.Format,
		File:   cli.Log.File,
		Stdout: console,
		Stderr: os.Stderr,
	})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)

	err = ctx.Run()
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
	if v := os.Getenv("VSGEN_CONFIG"); v != "" {
		return v
	}
	return ""
}
