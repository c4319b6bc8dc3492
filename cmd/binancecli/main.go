package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/thrasher-corp/binance-connector/config"
	"github.com/thrasher-corp/binance-connector/log"
	"github.com/urfave/cli/v2"
)

const defaultTimeout = time.Second * 30

var (
	configPath string
	envFile    string
	timeout    time.Duration
	cfg        *config.Config
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "binancecli"
	app.EnableBashCompletion = true
	app.Usage = "command line interface for the Binance Spot REST, websocket API and market streams"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "the config file to load, environment variables override it",
			Destination: &configPath,
		},
		&cli.StringFlag{
			Name:        "env",
			Value:       ".env",
			Usage:       "the dotenv file loaded before the config, ignored when missing",
			Destination: &envFile,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Value:       defaultTimeout,
			Usage:       "the default context timeout value for requests",
			Destination: &timeout,
		},
		&cli.StringFlag{
			Name:  "resturl",
			Usage: "override the REST base url",
		},
		&cli.StringFlag{
			Name:  "wsapiurl",
			Usage: "override the websocket API url",
		},
		&cli.StringFlag{
			Name:  "streamurl",
			Usage: "override the market stream base url",
		},
		&cli.StringFlag{
			Name:  "apikey",
			Usage: "override config API key for request",
		},
		&cli.StringFlag{
			Name:  "apisecret",
			Usage: "override config API secret for request",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "logs every request and response",
		},
	}
	app.Before = setup
	app.After = func(*cli.Context) error {
		return log.Close()
	}
	app.Commands = []*cli.Command{
		pingCommand,
		timeCommand,
		depthCommand,
		accountCommand,
		orderCommand,
		wsPingCommand,
		streamCommand,
	}
	return app
}

// setup loads the dotenv file and config, applies the flag overrides and
// starts the logger
func setup(c *cli.Context) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	for flag, target := range map[string]*string{
		"resturl":   &cfg.RESTURL,
		"wsapiurl":  &cfg.WSAPIURL,
		"streamurl": &cfg.StreamURL,
		"apikey":    &cfg.APIKey,
		"apisecret": &cfg.SecretKey,
	} {
		if c.IsSet(flag) {
			*target = c.String(flag)
		}
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return log.SetupGlobalLogger(&cfg.Logging)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
