package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"

	"cityweather/apis/openweathermap"
	"cityweather/cli"
	"cityweather/config"
	"cityweather/manager"
)

//go:embed config.yaml
var configRaw []byte

func newWeather(config config.Config, logger *log.Logger) (manager.Weather, error) {
	var opts []manager.Option
	if logger != nil {
		opts = append(opts, manager.WithLogger(logger))
	}

	provider, err := openweathermap.New(config.Provider)
	if err != nil {
		return nil, fmt.Errorf("openweathermap: %w", err)
	}

	return manager.New(provider, opts...), nil
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(configRaw)
	if err != nil {
		log.Fatalf("load config: %s\n", err)
	}

	cmd, err := cli.New(cfg, newWeather)
	if err != nil {
		log.Fatalf("new cli: %s\n", err)
	}

	if err = cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
