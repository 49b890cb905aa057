package cmd

import (
	"slices"
	"strings"

	"github.com/etnz/tradelots"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	log "github.com/sirupsen/logrus"
)

var currencies = predict.Set{tradelots.USD, tradelots.AUD}

// predictSymbols completes the symbols of the configured trades file.
func predictSymbols(prefix string) []string {
	cfg, err := loadConfig()
	if err != nil {
		return nil
	}
	// Warnings would pollute the completion output.
	log.SetLevel(log.PanicLevel)
	trades, _, err := DecodeTrades(cfg)
	if err != nil {
		return nil
	}
	var symbols []string
	for _, t := range trades {
		if strings.HasPrefix(t.Symbol, strings.ToUpper(prefix)) && !slices.Contains(symbols, t.Symbol) {
			symbols = append(symbols, t.Symbol)
		}
	}
	slices.Sort(symbols)
	return symbols
}

// Completion returns the shell completion tree of tlc.
func Completion() *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"summary":   {Flags: map[string]complete.Predictor{"c": currencies}},
			"positions": {Flags: map[string]complete.Predictor{"c": currencies}},
			"gains":     {Flags: map[string]complete.Predictor{"fy": predict.Nothing}},
			"years":     {},
			"performance": {Flags: map[string]complete.Predictor{
				"t": predict.Set{"3m", "6m", "1y", "all"},
				"c": currencies,
			}},
			"lots": {Flags: map[string]complete.Predictor{
				"s": complete.PredictFunc(predictSymbols),
				"c": currencies,
			}},
			"help":     {},
			"commands": {},
			"flags":    {},
		},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"trades": predict.Files("*.csv"),
			"rates":  predict.Files("*"),
			"raw":    predict.Nothing,
		},
	}
}
