package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"aeris-weather/config"
	"aeris-weather/di"
	"aeris-weather/logger"
	"aeris-weather/models"
	"aeris-weather/models/forecast"
	"aeris-weather/util"

	"github.com/alecthomas/kong"
)

// Globals are shared by every subcommand.
type Globals struct {
	Config   string `help:"Path to an optional config file (yaml, json or toml)." type:"path"`
	EnvFile  string `help:"Path to a .env file; a missing file is ignored." default:".env" name:"env-file"`
	LogLevel string `help:"Overrides the configured log level (debug, info, warn, error)."`

	out io.Writer
}

type CLI struct {
	Globals

	Serve    ServeCmd    `cmd:"" default:"1" help:"Run the HTTP API (default)."`
	Forecast ForecastCmd `cmd:"" help:"Fetch a forecast and print it."`
	Locate   LocateCmd   `cmd:"" help:"Resolve a location query from an IP address."`
}

type ServeCmd struct{}

func (c *ServeCmd) Run(g *Globals) error {
	container, err := g.container()
	if err != nil {
		return err
	}
	defer container.Close()

	return container.WeatherHttpServer.Start()
}

type ForecastCmd struct {
	Query   string        `arg:"" help:"City name, postal code or \"lat,lon\"."`
	Days    int           `help:"Forecast horizon in days (1-10)." default:"3"`
	Summary bool          `help:"Print the annotated summary instead of the raw payload."`
	Chart   string        `help:"Also write an HTML temperature chart to this file." type:"path"`
	Timeout time.Duration `help:"Overall deadline for the request." default:"15s"`
}

func (c *ForecastCmd) Run(g *Globals) error {
	container, err := g.container()
	if err != nil {
		return err
	}
	defer container.Close()

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	req := models.ForecastRequest{Query: c.Query, Days: models.Days(c.Days)}
	payload, err := container.ForecastService.GetForecast(ctx, req)
	if err != nil {
		return err
	}

	if c.Chart != "" {
		if err := writeChart(c.Chart, payload); err != nil {
			return err
		}
	}

	if !c.Summary {
		_, err := fmt.Fprintln(g.out, string(payload))
		return err
	}

	summary, err := container.ForecastService.GetForecastSummary(ctx, req)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(g.out)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

type LocateCmd struct {
	IP      string        `arg:"" optional:"" help:"IP address to resolve; defaults to this machine's public address."`
	Timeout time.Duration `help:"Overall deadline for the lookup." default:"10s"`
}

func (c *LocateCmd) Run(g *Globals) error {
	container, err := g.container()
	if err != nil {
		return err
	}
	defer container.Close()

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	query, err := container.LocationService.CurrentQuery(ctx, c.IP)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.out, query)
	return err
}

func (g *Globals) container() (*di.Container, error) {
	cfg, err := config.Load(g.Config, g.EnvFile)
	if err != nil {
		return nil, err
	}

	level := cfg.Logger.Level
	if g.LogLevel != "" {
		level = g.LogLevel
	}
	logger.Init(logger.Config{Level: level, Format: cfg.Logger.Format, Output: os.Stderr})

	return di.NewContainer(cfg)
}

func writeChart(path string, payload models.ForecastResponse) error {
	decoded, err := forecast.Decode(payload)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	return util.RenderTemperatureChart(f, decoded)
}

func main() {
	cli := CLI{Globals: Globals{out: os.Stdout}}
	ctx := kong.Parse(&cli,
		kong.Name("aeris-weather"),
		kong.Description("Weather forecast service backed by WeatherAPI.com."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}
