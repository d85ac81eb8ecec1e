package main

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"goledger/ledger"
	"goledger/logging"
	"goledger/miner"
)

var (
	flagNode = cli.StringFlag{
		Name:  "node",
		Value: "http://127.0.0.1:5000",
		Usage: "base URL of the ledger node",
	}
	flagID = cli.StringFlag{
		Name:  "id",
		Value: "",
		Usage: "reward recipient identifier (auto-generated if empty)",
	}
	flagDifficulty = cli.IntFlag{
		Name:  "difficulty",
		Value: ledger.DefaultDifficulty,
		Usage: "leading zero hex digits to search for (must match the node)",
	}
	flagRounds = cli.IntFlag{
		Name:  "rounds",
		Value: 0,
		Usage: "number of mining rounds, 0 runs forever",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "goledger-miner"
	app.Usage = "brute-force mining client for a goledger node"
	app.Flags = []cli.Flag{flagNode, flagID, flagDifficulty, flagRounds}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logging.GetLogIns("miner").WithError(err).Fatal("miner exited")
	}
}

func run(ctx *cli.Context) error {
	id := ctx.String("id")
	if id == "" {
		id = strings.ReplaceAll(uuid.New().String(), "-", "")
	}

	log := logging.GetLogIns("miner").WithField("id", id)
	client := miner.NewClient(ctx.String("node"), id)
	difficulty := ctx.Int("difficulty")
	rounds := ctx.Int("rounds")

	for round := 1; rounds == 0 || round <= rounds; round++ {
		result, err := client.MineOnce(difficulty)
		if err != nil {
			return err
		}
		if result.Accepted {
			log.WithField("index", result.Index).
				WithField("proof", result.Proof).Info("block mined")
		} else {
			// Lost the race against another miner; fetch the new tail and
			// go again.
			log.Info("proof rejected, retrying")
		}
	}
	return nil
}
