// Package cmd implements the tlc command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tradelots"
	"github.com/etnz/tradelots/config"
	"github.com/etnz/tradelots/rates"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// Commands lists the tlc subcommands.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&positionsCmd{},
	&gainsCmd{},
	&yearsCmd{},
	&performanceCmd{},
	&lotsCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "reports")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "tradelots.yaml", "Path to the configuration file")
var tradesFile = flag.String("trades", "", "Path to the broker CSV export. Overrides the configuration.")
var ratesFile = flag.String("rates", "", "Path to the USD/AUD rates file (.csv or .json). Overrides the configuration.")
var raw = flag.Bool("raw", false, "Print reports as raw markdown")

// stdout receives the reports.
var stdout io.Writer = os.Stdout

// loadConfig reads the configuration, applies the global flags and sets up
// logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *tradesFile != "" {
		cfg.Trades.File = *tradesFile
	}
	if *ratesFile != "" {
		cfg.Rates.File = *ratesFile
	}
	setupLogging(cfg.Log)
	return cfg, nil
}

func setupLogging(c config.LogConfig) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		log.WithField("level", c.Level).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if c.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
}

// DecodeTrades reads the configured broker export.
func DecodeTrades(cfg *config.Config) ([]tradelots.TradeEvent, []tradelots.Warning, error) {
	f, err := os.Open(cfg.Trades.File)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open trades file %q: %w", cfg.Trades.File, err)
	}
	defer f.Close()

	trades, ws, err := tradelots.LoadTrades(f, cfg.Normalizer())
	if err != nil {
		return nil, nil, fmt.Errorf("could not load trades file %q: %w", cfg.Trades.File, err)
	}
	log.WithFields(log.Fields{"file": cfg.Trades.File, "trades": len(trades)}).Debug("trades loaded")
	logWarnings(ws)
	return trades, ws, nil
}

// DecodeRates reads the configured rate table. A missing file is not an
// error: every conversion then uses the fallback rate.
func DecodeRates(cfg *config.Config) (*tradelots.Rates, error) {
	r, err := rates.Open(cfg.Rates.File)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("file", cfg.Rates.File).Warn("rates file does not exist, using the fallback rate for every conversion")
		r, err = tradelots.NewRates(), nil
	}
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"file": cfg.Rates.File, "days": r.Len()}).Debug("rates loaded")
	return r.WithFallback(cfg.FallbackRate()), nil
}

// DecodeAccountingSystem loads the configuration, the trades and the rates.
func DecodeAccountingSystem() (*tradelots.AccountingSystem, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	trades, ws, err := DecodeTrades(cfg)
	if err != nil {
		return nil, nil, err
	}
	r, err := DecodeRates(cfg)
	if err != nil {
		return nil, nil, err
	}
	return tradelots.NewAccountingSystem(trades, r, tradelots.WithWarnings(ws)), cfg, nil
}

func logWarnings(ws []tradelots.Warning) {
	for _, w := range ws {
		log.WithFields(log.Fields{"symbol": w.Symbol, "field": w.Field}).Warn(w.Message)
	}
}

// displayCurrency validates the requested currency, or the configured one.
func displayCurrency(flagValue string, cfg *config.Config) (string, error) {
	cur := flagValue
	if cur == "" {
		cur = cfg.Display.Currency
	}
	if c := tradelots.CurrencyOf(cur); c != "" {
		return c, nil
	}
	return "", fmt.Errorf("unsupported display currency %q, want USD or AUD", cur)
}

// printMarkdown renders markdown for the terminal, unless -raw is set.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		log.WithError(err).Debug("cannot render markdown")
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
