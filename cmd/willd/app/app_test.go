package willd

import (
	"fmt"
	"testing"
	"time"

	"github.com/iov-one/digiheir/x/will"
	"github.com/iov-one/weave"
	weaveApp "github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const chainID = "test-chain-will"

var genesisTime = time.Date(2019, 10, 1, 0, 0, 0, 0, time.UTC)

type testApp struct {
	t      *testing.T
	app    weaveApp.BaseApp
	height int64
	seq    map[string]int64
}

func newTestApp(t *testing.T, owner weave.Address) *testApp {
	t.Helper()

	abciApp, err := GenerateApp(&server.Options{
		Home:   "",
		Logger: log.NewNopLogger(),
	})
	assert.Nil(t, err)
	myApp := abciApp.(weaveApp.BaseApp)

	appState := fmt.Sprintf(`{
		"cash": [{
			"address": "%s",
			"coins": [{"whole": 1000, "ticker": "DGH"}]
		}],
		"conf": {
			"cash": {
				"collector_address": "%s",
				"minimal_fee": {"whole": 0}
			},
			"migration": {"admin": "%s"},
			"will": {
				"owner": "%s",
				"ticker": "DGH",
				"max_beneficiaries": 5,
				"max_document_ref_length": 128
			}
		},
		"initialize_schema": [
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "migration", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "will", "ver": 1}
		]
	}`, owner, owner, owner, owner)
	myApp.InitChain(abci.RequestInitChain{
		Time:          genesisTime,
		ChainId:       chainID,
		AppStateBytes: []byte(appState),
	})
	// Genesis state is visible to CheckTx only after the first commit.
	myApp.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{Height: 1, ChainID: chainID, Time: genesisTime},
	})
	myApp.EndBlock(abci.RequestEndBlock{Height: 1})
	if cres := myApp.Commit(); len(cres.Data) == 0 {
		t.Fatal("first block must not be empty")
	}
	return &testApp{t: t, app: myApp, height: 1, seq: make(map[string]int64)}
}

// deliver executes given message signed by the signer in a new block with
// given block time.
func (ta *testApp) deliver(at time.Time, signer *crypto.PrivateKey, msg weave.Msg) abci.ResponseDeliverTx {
	ta.t.Helper()

	tx := &Tx{}
	switch m := msg.(type) {
	case *cash.SendMsg:
		tx.Sum = &Tx_CashSendMsg{CashSendMsg: m}
	case *will.CreateMsg:
		tx.Sum = &Tx_WillCreateMsg{WillCreateMsg: m}
	case *will.AddBeneficiaryMsg:
		tx.Sum = &Tx_WillAddBeneficiaryMsg{WillAddBeneficiaryMsg: m}
	case *will.RecordActivityMsg:
		tx.Sum = &Tx_WillRecordActivityMsg{WillRecordActivityMsg: m}
	case *will.ExecuteMsg:
		tx.Sum = &Tx_WillExecuteMsg{WillExecuteMsg: m}
	default:
		ta.t.Fatalf("unsupported message %T", msg)
	}

	key := signer.PublicKey().Address().String()
	sig, err := sigs.SignTx(signer, tx, chainID, ta.seq[key])
	assert.Nil(ta.t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := tx.Marshal()
	assert.Nil(ta.t, err)

	ta.height++
	ta.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{Height: ta.height, ChainID: chainID, Time: at},
	})
	defer func() {
		ta.app.EndBlock(abci.RequestEndBlock{Height: ta.height})
		ta.app.Commit()
	}()

	// A transaction rejected by the check is never delivered and the
	// signer sequence does not change.
	if chres := ta.app.CheckTx(raw); chres.Code != 0 {
		return abci.ResponseDeliverTx{Code: chres.Code, Log: chres.Log}
	}
	ta.seq[key]++
	return ta.app.DeliverTx(raw)
}

func (ta *testApp) query(path string, key []byte, obj weave.Persistent) {
	ta.t.Helper()

	qres := ta.app.Query(abci.RequestQuery{Path: path, Data: key})
	if qres.Code != 0 {
		ta.t.Fatalf("query %s failed: %s", path, qres.Log)
	}
	if err := weaveApp.UnmarshalOneResult(qres.Value, obj); err != nil {
		ta.t.Fatalf("cannot unmarshal %s query result: %s", path, err)
	}
}

func TestWillLifecycle(t *testing.T) {
	alice := crypto.GenPrivKeyEd25519()
	bob := crypto.GenPrivKeyEd25519()
	carol := crypto.GenPrivKeyEd25519()
	dave := crypto.GenPrivKeyEd25519()
	aliceAddr := alice.PublicKey().Address()

	ta := newTestApp(t, aliceAddr)

	res := ta.deliver(genesisTime.Add(time.Second), alice, &will.CreateMsg{
		Metadata:         &weave.Metadata{Schema: 1},
		DocumentRef:      "sha256:01",
		InactivityPeriod: 60,
	})
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, []byte(aliceAddr), res.Data)

	for _, b := range []struct {
		addr  weave.Address
		share int32
	}{
		{bob.PublicKey().Address(), 60},
		{carol.PublicKey().Address(), 40},
	} {
		res := ta.deliver(genesisTime.Add(2*time.Second), alice, &will.AddBeneficiaryMsg{
			Metadata:    &weave.Metadata{Schema: 1},
			Beneficiary: b.addr,
			Share:       b.share,
		})
		assert.Equal(t, uint32(0), res.Code)
	}

	res = ta.deliver(genesisTime.Add(3*time.Second), alice, &cash.SendMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Source:      aliceAddr,
		Destination: will.CustodyAddress(aliceAddr),
		Amount:      coin.NewCoinp(500, 0, "DGH"),
		Memo:        "inheritance",
	})
	assert.Equal(t, uint32(0), res.Code)

	// Too early, the owner was active three seconds ago.
	res = ta.deliver(genesisTime.Add(30*time.Second), dave, &will.ExecuteMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    aliceAddr,
	})
	if res.Code != will.ErrInactivityNotMet.ABCICode() {
		t.Fatalf("want inactivity error, got %d: %s", res.Code, res.Log)
	}

	res = ta.deliver(genesisTime.Add(2*time.Minute), dave, &will.ExecuteMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    aliceAddr,
	})
	if res.Code != 0 {
		t.Fatalf("cannot execute will: %s", res.Log)
	}
	var result will.ExecuteResult
	assert.Nil(t, result.Unmarshal(res.Data))
	assert.Equal(t, 2, len(result.Payouts))

	var executed int
	for _, tag := range res.Tags {
		if string(tag.Key) == "will/executed" {
			executed++
		}
	}
	assert.Equal(t, 2, executed)

	var bobSet cash.Set
	ta.query("/wallets", bob.PublicKey().Address(), &bobSet)
	assert.Equal(t, 1, len(bobSet.Coins))
	assert.Equal(t, true, bobSet.Coins[0].Equals(coin.NewCoin(300, 0, "DGH")))

	var carolSet cash.Set
	ta.query("/wallets", carol.PublicKey().Address(), &carolSet)
	assert.Equal(t, true, carolSet.Coins[0].Equals(coin.NewCoin(200, 0, "DGH")))

	var w will.Will
	ta.query("/wills", aliceAddr, &w)
	assert.Equal(t, int32(1), w.ExecutionCount)
	assert.Equal(t, int32(2), w.BeneficiaryCount)
}
