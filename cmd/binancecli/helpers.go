package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/binance-connector/encoding/json"
	"github.com/thrasher-corp/binance-connector/exchanges/binance"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func newRESTClient() (*binance.Client, error) {
	var opts []binance.Option
	if cfg.Verbose {
		opts = append(opts, binance.WithVerbose())
	}
	return binance.New(cfg.RESTURL, cfg.APIKey, cfg.SecretKey, opts...)
}

// withTimeout bounds the command's context by the timeout flag
func withTimeout(c *cli.Context) (context.Context, context.CancelFunc) {
	return withTimeoutOf(c, timeout)
}

func withTimeoutOf(c *cli.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context, d)
}

func jsonOutput(w io.Writer, in any) error {
	j, err := json.MarshalIndent(in, "", " ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(j))
	return err
}

// amount formats d with thousands separators
func amount(d decimal.Decimal, places int32) string {
	return printer.Sprintf("%.*f", int(places), d.InexactFloat64())
}

func success(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, aurora.Green(fmt.Sprintf(format, a...)))
}
