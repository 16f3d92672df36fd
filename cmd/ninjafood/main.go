package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ninjafood/ordering/internal/auth"
	"github.com/ninjafood/ordering/internal/cli"
	"github.com/ninjafood/ordering/internal/config"
	"github.com/ninjafood/ordering/internal/customer"
	"github.com/ninjafood/ordering/internal/logging"
	"github.com/ninjafood/ordering/internal/menu"
	"github.com/ninjafood/ordering/internal/order"
	"github.com/ninjafood/ordering/internal/stats"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(conf)

	if err := os.MkdirAll(conf.DataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create data directory: %v\n", err)
		os.Exit(1)
	}

	menuStore := menu.NewStore(conf.DataDir)
	statsLedger := stats.NewLedger(conf.DataDir)
	validator := order.NewValidator(menu.NewStockLedger(menuStore), statsLedger)
	receipts := order.NewReceiptJournal(conf.DataDir)
	loyalty := customer.NewLoyaltyIndex(conf.DataDir)
	creds := auth.NewCredentialStore(conf.DataDir)

	app := cli.New(os.Stdin, os.Stdout, conf.DataDir,
		menuStore, validator, receipts, statsLedger, loyalty, creds)
	if err := app.Run(); err != nil {
		log.WithError(err).Fatal("ordering system aborted")
	}
}
