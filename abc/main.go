package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/assetbloc/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion declares the shell completion tree for the abc command.
// Run `COMP_INSTALL=1 abc` once to install it.
func completion() {
	txFlags := map[string]complete.Predictor{
		"d":      predict.Nothing,
		"asset":  predict.Nothing,
		"amount": predict.Nothing,
		"m":      predict.Nothing,
	}
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data":   predict.Dirs("*"),
			"ledger": predict.Nothing,
			"as":     predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"init":       {Flags: map[string]complete.Predictor{"currency": predict.Set{"EUR", "USD", "GBP"}, "m": predict.Nothing}},
			"add-asset":  {Flags: map[string]complete.Predictor{"name": predict.Nothing, "location": predict.Nothing, "value": predict.Nothing, "param": predict.Nothing, "rent": predict.Nothing, "m": predict.Nothing}},
			"edit-asset": {Flags: map[string]complete.Predictor{"asset": predict.Nothing, "name": predict.Nothing, "location": predict.Nothing, "value": predict.Nothing, "param": predict.Nothing, "rent": predict.Nothing, "m": predict.Nothing}},
			"deposit":    {Flags: txFlags},
			"withdraw":   {Flags: txFlags},
			"buy":        {Flags: txFlags},
			"sell":       {Flags: txFlags},
			"lock":       {Flags: map[string]complete.Predictor{"d": predict.Nothing, "asset": predict.Nothing, "amount": predict.Nothing, "periods": predict.Nothing, "m": predict.Nothing}},
			"unlock":     {Flags: map[string]complete.Predictor{"d": predict.Nothing, "asset": predict.Nothing, "m": predict.Nothing}},
			"rent":       {Flags: map[string]complete.Predictor{"d": predict.Nothing, "asset": predict.Nothing, "payment": predict.Nothing, "m": predict.Nothing}},
			"kickout":    {Flags: map[string]complete.Predictor{"d": predict.Nothing, "asset": predict.Nothing, "m": predict.Nothing}},
			"assets":     {},
			"asset":      {Flags: map[string]complete.Predictor{"id": predict.Nothing}},
			"balance":    {Flags: map[string]complete.Predictor{"of": predict.Nothing}},
			"owners":     {Flags: map[string]complete.Predictor{"asset": predict.Nothing}},
			"rent-due":   {Flags: map[string]complete.Predictor{"asset": predict.Nothing}},
			"audit":      {},
			"log":        {Flags: map[string]complete.Predictor{"actor": predict.Nothing, "asset": predict.Nothing}},
			"fmt":        {},
			"update":     {Flags: map[string]complete.Predictor{"feeds": predict.Files("*.json")}},
			"topic":      {Args: predict.Set{"getting-started", "trading", "renting", "administration", "readme", "*"}},
			"assist":     {},
		},
	}
	c.Complete("abc")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
