package main

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"goledger/api"
	"goledger/config"
	"goledger/ledger"
	"goledger/logging"
)

var (
	flagConfig = cli.StringFlag{
		Name:  "config",
		Value: "",
		Usage: "path to TOML config file",
	}
	flagListen = cli.StringFlag{
		Name:  "listen",
		Value: "",
		Usage: "listen address, overrides config",
	}
	flagLogLevel = cli.StringFlag{
		Name:  "logLevel",
		Value: "",
		Usage: "log level (debug/info/warning/error), overrides config",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "goledger-node"
	app.Usage = "proof-of-work ledger node"
	app.Flags = []cli.Flag{flagConfig, flagListen, flagLogLevel}
	app.Action = start

	if err := app.Run(os.Args); err != nil {
		logging.GetLogIns("node").WithError(err).Fatal("node exited")
	}
}

func start(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return err
	}
	if listen := ctx.String("listen"); listen != "" {
		cfg.Listen = listen
	}
	if level := ctx.String("logLevel"); level != "" {
		cfg.LogLevel = level
	}

	if err := logging.Init(cfg.LogLevel); err != nil {
		return err
	}
	log := logging.GetLogIns("node")

	// One identifier per process; the engine itself never reads it.
	nodeID := strings.ReplaceAll(uuid.New().String(), "-", "")
	log.WithField("node_id", nodeID).Info("node identifier generated")

	l := ledger.New()
	log.WithField("genesis_hash", ledger.HashBlock(l.LastBlock())).
		Info("ledger initialized")

	server := api.NewServer(l, nodeID, cfg.Listen)
	return server.Start()
}
