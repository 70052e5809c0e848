package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	willd "github.com/iov-one/digiheir/cmd/willd/app"
	"github.com/iov-one/digiheir/cmd/willd/client"
	"github.com/iov-one/digiheir/x/will"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	nm "github.com/tendermint/tendermint/node"
	rpctest "github.com/tendermint/tendermint/rpc/test"
	tm "github.com/tendermint/tendermint/types"
)

var (
	node   *nm.Node
	faucet *client.PrivateKey
	tmAddr string
)

func TestMain(m *testing.M) {
	os.Exit(runTestMain(m))
}

// we need to do setup in a separate function, so cleanup is properly called
// os.Exit(code) above will never call defer
func runTestMain(m *testing.M) int {
	faucet = client.GenPrivateKey()

	config := rpctest.GetConfig()
	app, err := willd.GenerateApp(&server.Options{
		Home:   config.RootDir,
		Logger: log.NewNopLogger(),
	})
	if err != nil {
		panic(err)
	}
	if err := initGenesis(config.GenesisFile(), faucet.PublicKey().Address()); err != nil {
		panic(err)
	}
	tmAddr = config.RPC.ListenAddress

	node = rpctest.StartTendermint(app)
	defer func() {
		node.Stop()
		node.Wait()
	}()
	time.Sleep(100 * time.Millisecond)
	return m.Run()
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
				"coins":   coin.Coins{coin.NewCoinp(1000000, 0, "DGH")},
			},
		},
		"conf": dict{
			"cash": dict{
				"collector_address": addr,
				"minimal_fee":       coin.Coin{},
			},
			"migration": dict{"admin": addr},
			"will": dict{
				"owner":                   addr,
				"ticker":                  "DGH",
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

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()
	for _, path := range [][]string{
		{"keygen"},
		{"create"},
		{"add-beneficiary"},
		{"execute"},
		{"sign"},
		{"submit"},
		{"query", "will"},
		{"query", "custody"},
		{"doc", "upload"},
		{"doc", "fetch"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Equal(t, gitHash, strings.TrimSpace(out.String()))
}

// pipeline runs given commands, passing the output of each one as the input
// of the next one, and returns the output of the last command.
func pipeline(t *testing.T, steps ...func(in *bytes.Buffer, out *bytes.Buffer) error) string {
	t.Helper()
	in := &bytes.Buffer{}
	for i, step := range steps {
		out := &bytes.Buffer{}
		if err := step(in, out); err != nil {
			t.Fatalf("step %d: %s", i, err)
		}
		in = out
	}
	return in.String()
}

func run(cmd cmdFunc, args ...string) func(in *bytes.Buffer, out *bytes.Buffer) error {
	return func(in *bytes.Buffer, out *bytes.Buffer) error {
		return cmd(in, out, args)
	}
}

func TestSignSubmitQuery(t *testing.T) {
	dir := t.TempDir()
	ownerKey := filepath.Join(dir, "owner.key")
	require.NoError(t, cmdKeygen(nil, ioutil.Discard, []string{"-key", ownerKey}))
	faucetKey := filepath.Join(dir, "faucet.key")
	require.NoError(t, ioutil.WriteFile(faucetKey, faucet.GetEd25519(), 0600))

	owner, err := loadPrivateKey(ownerKey)
	require.NoError(t, err)
	ownerAddr := owner.PublicKey().Address().String()
	benef := client.GenPrivateKey().PublicKey().Address().String()

	created := pipeline(t,
		run(cmdCreateWill, "-doc", "sha256:aa", "-period", "1h"),
		run(cmdSignTransaction, "-tm", tmAddr, "-key", ownerKey),
		run(cmdSubmitTransaction, "-tm", tmAddr),
	)
	assert.Equal(t, ownerAddr, strings.TrimSpace(created))

	pipeline(t,
		run(cmdAddBeneficiary, "-beneficiary", benef, "-share", "100"),
		run(cmdSignTransaction, "-tm", tmAddr, "-key", ownerKey),
		run(cmdSubmitTransaction, "-tm", tmAddr),
	)
	pipeline(t,
		run(cmdSendTokens, "-src", faucet.PublicKey().Address().String(), "-custody-of", ownerAddr, "-amount", "10 DGH"),
		run(cmdSignTransaction, "-tm", tmAddr, "-key", faucetKey),
		run(cmdSubmitTransaction, "-tm", tmAddr),
	)

	var w will.Will
	out := pipeline(t, run(cmdQueryWill, "-tm", tmAddr, "-owner", ownerAddr))
	require.NoError(t, json.Unmarshal([]byte(out), &w))
	assert.Equal(t, "sha256:aa", w.DocumentRef)
	assert.Equal(t, int32(1), w.BeneficiaryCount)

	out = pipeline(t, run(cmdQueryCount, "-tm", tmAddr, "-owner", ownerAddr))
	assert.Equal(t, "1", strings.TrimSpace(out))

	var benefs []will.Beneficiary
	out = pipeline(t, run(cmdQueryBeneficiaries, "-tm", tmAddr, "-owner", ownerAddr))
	require.NoError(t, json.Unmarshal([]byte(out), &benefs))
	require.Len(t, benefs, 1)
	assert.Equal(t, int32(100), benefs[0].Share)

	out = pipeline(t, run(cmdQueryCustody, "-tm", tmAddr, "-owner", ownerAddr))
	assert.Contains(t, out, "DGH")

	// The owner was active a moment ago.
	executor := filepath.Join(dir, "executor.key")
	require.NoError(t, cmdKeygen(nil, ioutil.Discard, []string{"-key", executor}))
	var signed bytes.Buffer
	var unsigned bytes.Buffer
	require.NoError(t, cmdExecute(nil, &unsigned, []string{"-owner", ownerAddr}))
	require.NoError(t, cmdSignTransaction(&unsigned, &signed, []string{"-tm", tmAddr, "-key", executor}))
	err = cmdSubmitTransaction(&signed, ioutil.Discard, []string{"-tm", tmAddr})
	assert.Error(t, err)
}
