package client

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	willd "github.com/iov-one/digiheir/cmd/willd/app"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	abci "github.com/tendermint/tendermint/abci/types"
	cfg "github.com/tendermint/tendermint/config"
	"github.com/tendermint/tendermint/libs/log"
	nm "github.com/tendermint/tendermint/node"
	rpctest "github.com/tendermint/tendermint/rpc/test"
	tm "github.com/tendermint/tendermint/types"
)

// configuration for genesis
var initBalance = coin.Coin{
	Whole:  100200300,
	Ticker: "DGH",
}

// adjust this to get debug output
var logger = log.NewNopLogger() // log.NewTMLogger()

// useful values for test cases
var node *nm.Node
var faucet *PrivateKey

func getChainID() string {
	return rpctest.GetConfig().ChainID()
}

func TestMain(m *testing.M) {
	faucet = GenPrivateKey()

	config := rpctest.GetConfig()
	config.Moniker = "SetInTestMain"

	admin := faucet.PublicKey().Address()
	app, err := initApp(config, admin)
	if err != nil {
		panic(err)
	}

	// run the app inside a tendermint instance
	node = rpctest.StartTendermint(app)
	time.Sleep(100 * time.Millisecond) // time to setup app context
	code := m.Run()

	node.Stop()
	node.Wait()
	os.Exit(code)
}

func initApp(config *cfg.Config, addr weave.Address) (abci.Application, error) {
	opts := &server.Options{
		MinFee: coin.Coin{},
		Home:   config.RootDir,
		Logger: logger,
		Debug:  false,
	}
	app, err := willd.GenerateApp(opts)
	if err != nil {
		return nil, err
	}
	err = initGenesis(config.GenesisFile(), addr)
	return app, err
}

func initGenesis(filename string, addr weave.Address) error {
	doc, err := tm.GenesisDocFromFile(filename)
	if err != nil {
		return err
	}
	type dict map[string]interface{}
	appState, err := json.Marshal(dict{
		"cash": []interface{}{
			dict{
				"address": addr,
				"coins":   coin.Coins{&initBalance},
			},
		},
		"conf": dict{
			"cash": dict{
				"collector_address": addr,
				"minimal_fee":       coin.Coin{},
			},
			"migration": dict{
				"admin": addr,
			},
			"will": dict{
				"owner":                   addr,
				"ticker":                  initBalance.Ticker,
				"max_beneficiaries":       5,
				"max_document_ref_length": 128,
			},
		},
		"initialize_schema": []dict{
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "migration", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "will", "ver": 1},
		},
	})
	if err != nil {
		return fmt.Errorf("serialize state: %s", err)
	}
	doc.AppState = appState
	return doc.SaveAs(filename)
}
