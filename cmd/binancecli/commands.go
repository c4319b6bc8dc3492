package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/binance-connector/exchanges/binance"
	"github.com/thrasher-corp/binance-connector/exchanges/stream"
	"github.com/urfave/cli/v2"
)

var (
	errNoSymbol      = errors.New("a symbol is required")
	errNoCredentials = errors.New("API key and secret are required")
	errNoStreams     = errors.New("at least one stream name is required")
	errInvalidSide   = errors.New("invalid order side")
)

var pingCommand = &cli.Command{
	Name:   "ping",
	Usage:  "tests connectivity to the REST API",
	Action: ping,
}

var timeCommand = &cli.Command{
	Name:   "time",
	Usage:  "prints the server time and the local clock offset",
	Action: serverTime,
}

var depthCommand = &cli.Command{
	Name:      "depth",
	Usage:     "prints the top of the order book",
	ArgsUsage: "<symbol>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "symbol",
			Usage: "the symbol, e.g. BTCUSDT",
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "the number of levels per side",
			Value: 10,
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print the raw response",
		},
	},
	Action: depth,
}

var accountCommand = &cli.Command{
	Name:  "account",
	Usage: "prints the non zero account balances",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print the raw response",
		},
	},
	Action: account,
}

var orderCommand = &cli.Command{
	Name:      "order",
	Usage:     "order commands",
	ArgsUsage: "<command> <args>",
	Subcommands: []*cli.Command{
		{
			Name:      "test",
			Usage:     "validates an order without sending it to the matching engine",
			ArgsUsage: "<symbol>",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "symbol", Usage: "the symbol, e.g. BTCUSDT"},
				&cli.StringFlag{Name: "side", Usage: "BUY or SELL"},
				&cli.StringFlag{Name: "type", Usage: "the order type", Value: string(binance.OrderTypeLimit)},
				&cli.StringFlag{Name: "quantity", Usage: "the base asset quantity"},
				&cli.StringFlag{Name: "price", Usage: "the limit price"},
				&cli.StringFlag{Name: "timeinforce", Usage: "GTC, IOC or FOK", Value: string(binance.TimeInForceGTC)},
			},
			Action: testOrder,
		},
	},
}

var wsPingCommand = &cli.Command{
	Name:   "ws-ping",
	Usage:  "measures the round trip of the websocket API",
	Action: wsPing,
}

var streamCommand = &cli.Command{
	Name:      "stream",
	Usage:     "subscribes to market streams and prints every event until interrupted",
	ArgsUsage: "<stream> [stream...]",
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  "duration",
			Usage: "stop after this long, 0 runs until interrupted",
		},
	},
	Action: streamEvents,
}

func ping(c *cli.Context) error {
	client, err := newRESTClient()
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(c)
	defer cancel()

	start := time.Now()
	if _, err := client.Ping(ctx); err != nil {
		return err
	}
	success(c.App.Writer, "pong from %s in %s", cfg.RESTURL, time.Since(start).Round(time.Millisecond))
	return nil
}

func serverTime(c *cli.Context) error {
	client, err := newRESTClient()
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(c)
	defer cancel()

	resp, err := client.ServerTime(ctx)
	if err != nil {
		return err
	}
	offset := time.Until(resp.ServerTime.Time()).Round(time.Millisecond)
	fmt.Fprintf(c.App.Writer, "server time %s (offset %s)\n", resp.ServerTime.Time().UTC().Format(time.RFC3339Nano), offset)
	return nil
}

func symbolArg(c *cli.Context) (string, error) {
	symbol := c.String("symbol")
	if symbol == "" {
		symbol = c.Args().First()
	}
	if symbol == "" {
		return "", errNoSymbol
	}
	return strings.ToUpper(symbol), nil
}

func depth(c *cli.Context) error {
	symbol, err := symbolArg(c)
	if err != nil {
		return err
	}
	client, err := newRESTClient()
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(c)
	defer cancel()

	book, err := client.Depth(ctx, binance.DepthParams{Symbol: symbol, Limit: c.Int("limit")})
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return jsonOutput(c.App.Writer, book)
	}
	w := c.App.Writer
	fmt.Fprintf(w, "%s order book, update %d\n", symbol, book.LastUpdateID)
	for i := len(book.Asks) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "%20s %20s\n", aurora.Red(amount(book.Asks[i].Price, 8)), amount(book.Asks[i].Quantity, 8))
	}
	for i := range book.Bids {
		fmt.Fprintf(w, "%20s %20s\n", aurora.Green(amount(book.Bids[i].Price, 8)), amount(book.Bids[i].Quantity, 8))
	}
	return nil
}

func account(c *cli.Context) error {
	if !cfg.HasCredentials() {
		return errNoCredentials
	}
	client, err := newRESTClient()
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(c)
	defer cancel()

	params := binance.NewAccountParams()
	omit := true
	params.OmitZeroBalances = &omit
	if cfg.RecvWindow > 0 {
		params.SetRecvWindow(cfg.RecvWindowDuration())
	}
	acc, err := client.Account(ctx, params)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return jsonOutput(c.App.Writer, acc)
	}
	w := c.App.Writer
	fmt.Fprintf(w, "%s account, trading enabled: %v\n", acc.AccountType, acc.CanTrade)
	for _, b := range acc.Balances {
		if b.Free.IsZero() && b.Locked.IsZero() {
			continue
		}
		fmt.Fprintf(w, "%-8s free %20s locked %20s\n", aurora.Bold(b.Asset), amount(b.Free, 8), amount(b.Locked, 8))
	}
	return nil
}

func testOrder(c *cli.Context) error {
	if !cfg.HasCredentials() {
		return errNoCredentials
	}
	symbol, err := symbolArg(c)
	if err != nil {
		return err
	}
	params := binance.NewOrderParams(symbol,
		binance.OrderSide(strings.ToUpper(c.String("side"))),
		binance.OrderType(strings.ToUpper(c.String("type"))))
	if params.Side != binance.SideBuy && params.Side != binance.SideSell {
		return fmt.Errorf("%w %q", errInvalidSide, params.Side)
	}
	qty, err := decimal.NewFromString(c.String("quantity"))
	if err != nil {
		return fmt.Errorf("invalid quantity: %w", err)
	}
	params.Quantity = &qty
	if p := c.String("price"); p != "" {
		price, err := decimal.NewFromString(p)
		if err != nil {
			return fmt.Errorf("invalid price: %w", err)
		}
		params.Price = &price
		params.TimeInForce = binance.TimeInForce(strings.ToUpper(c.String("timeinforce")))
	}
	if cfg.RecvWindow > 0 {
		params.SetRecvWindow(cfg.RecvWindowDuration())
	}

	client, err := newRESTClient()
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(c)
	defer cancel()
	if _, err := client.TestNewOrder(ctx, params); err != nil {
		return err
	}
	success(c.App.Writer, "%s %s %s %s accepted", params.Side, amount(qty, 8), symbol, params.Type)
	return nil
}

func wsPing(c *cli.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	var opts []stream.Option
	if cfg.Verbose {
		opts = append(opts, stream.WithVerbose())
	}
	ws, err := binance.DialWSAPI(ctx, cfg.WSAPIURL, cfg.APIKey, cfg.SecretKey, opts...)
	if err != nil {
		return err
	}
	defer ws.Close()

	start := time.Now()
	if _, err := ws.Ping(ctx); err != nil {
		return err
	}
	rtt := time.Since(start)
	st, err := ws.ServerTime(ctx)
	if err != nil {
		return err
	}
	success(c.App.Writer, "pong from %s in %s, server time %d", cfg.WSAPIURL, rtt.Round(time.Millisecond), st.ServerTime.Time().UnixMilli())
	return nil
}

func streamEvents(c *cli.Context) error {
	names := c.Args().Slice()
	if len(names) == 0 {
		return errNoStreams
	}
	ctx := c.Context
	if d := c.Duration("duration"); d > 0 {
		var cancel func()
		ctx, cancel = withTimeoutOf(c, d)
		defer cancel()
	}

	data := make(chan stream.Event, 64)
	errs := make(chan error, 8)
	status := make(chan stream.Status, 8)
	opts := []stream.Option{stream.WithStatus(status)}
	if cfg.Verbose {
		opts = append(opts, stream.WithVerbose())
	}
	subs, err := binance.DialStreams(ctx, binance.CombinedStreamURL(cfg.StreamURL), data, errs, opts...)
	if err != nil {
		return err
	}
	defer subs.Close()
	if err := subs.Subscribe(ctx, names...); err != nil {
		return err
	}
	success(c.App.Writer, "subscribed to %s", strings.Join(names, ", "))

	w := c.App.Writer
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-subs.Conn().Done():
			return subs.Conn().Err()
		case s := <-status:
			fmt.Fprintln(w, aurora.Yellow(s.String()))
		case err := <-errs:
			fmt.Fprintln(w, aurora.Red(err.Error()))
		case ev := <-data:
			if err := jsonOutput(w, ev.Data); err != nil {
				return err
			}
		}
	}
}
