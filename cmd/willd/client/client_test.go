package client

import (
	"testing"
	"time"

	"github.com/iov-one/weave/coin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/rpc/client"
	rpctest "github.com/tendermint/tendermint/rpc/test"
)

// blocks go by fast, no need to wait seconds....
func fastWaiter(delta int64) (abort error) {
	delay := time.Duration(delta) * 5 * time.Millisecond
	time.Sleep(delay)
	return nil
}

var _ client.Waiter = fastWaiter

func TestMainSetup(t *testing.T) {
	config := rpctest.GetConfig()
	assert.Equal(t, "SetInTestMain", config.Moniker)

	conn := client.NewLocal(node)
	status, err := conn.Status()
	require.NoError(t, err)
	assert.Equal(t, "SetInTestMain", status.NodeInfo.Moniker)

	client.WaitForHeight(conn, 5, fastWaiter)
	status, err = conn.Status()
	require.NoError(t, err)
	assert.True(t, status.SyncInfo.LatestBlockHeight > 4)
}

func TestWalletQuery(t *testing.T) {
	missing := GenPrivateKey().PublicKey().Address()

	conn := NewLocalConnection(node)
	wc := NewClient(conn)
	client.WaitForHeight(conn, 5, fastWaiter)

	// bad address returns error
	_, err := wc.GetWallet([]byte{1, 2, 3, 4})
	assert.Error(t, err)

	wallet, err := wc.GetWallet(missing)
	assert.NoError(t, err)
	assert.Nil(t, wallet)

	money := faucet.PublicKey().Address()
	wallet, err = wc.GetWallet(money)
	require.NoError(t, err)
	require.NotNil(t, wallet)
	assert.EqualValues(t, money, wallet.Address)
	require.Equal(t, 1, len(wallet.Wallet.Coins))
	assert.Equal(t, initBalance.Ticker, wallet.Wallet.Coins[0].Ticker)
}

func TestNonce(t *testing.T) {
	addr := GenPrivateKey().PublicKey().Address()
	wc := NewClient(NewLocalConnection(node))

	nonce := NewNonce(wc, addr)
	n, err := nonce.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = nonce.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = nonce.Query()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestMissingWill(t *testing.T) {
	wc := NewClient(NewLocalConnection(node))
	nobody := GenPrivateKey().PublicKey().Address()

	w, err := wc.GetWill(nobody)
	require.NoError(t, err)
	assert.Nil(t, w)

	resp, err := wc.Beneficiaries(nobody)
	require.NoError(t, err)
	assert.Empty(t, resp.Beneficiaries)

	_, err = wc.BeneficiaryCount(nobody)
	assert.Error(t, err)

	funds, err := wc.CustodyBalance(nobody)
	require.NoError(t, err)
	assert.Empty(t, funds)
}

func TestWillLifecycle(t *testing.T) {
	wc := NewClient(NewLocalConnection(node))
	chainID := getChainID()

	owner := GenPrivateKey()
	ownerAddr := owner.PublicKey().Address()
	alice := GenPrivateKey().PublicKey().Address()
	bob := GenPrivateKey().PublicKey().Address()
	src := faucet.PublicKey().Address()

	// The owner needs no funds, fees are disabled in the genesis.
	ownerNonce := NewNonce(wc, ownerAddr)
	submit := func(tx Tx, signer *PrivateKey, nonce *Nonce) BroadcastTxResponse {
		t.Helper()
		n, err := nonce.Next()
		require.NoError(t, err)
		require.NoError(t, SignTx(tx, signer, chainID, n))
		return wc.BroadcastTx(tx)
	}

	res := submit(BuildCreateTx(ownerAddr, "sha256:01", 1), owner, ownerNonce)
	require.NoError(t, res.IsError())

	res = submit(BuildAddBeneficiaryTx(ownerAddr, alice, 75), owner, ownerNonce)
	require.NoError(t, res.IsError())
	res = submit(BuildAddBeneficiaryTx(ownerAddr, bob, 25), owner, ownerNonce)
	require.NoError(t, res.IsError())

	// Share sum cannot exceed 100.
	res = submit(BuildAddBeneficiaryTx(ownerAddr, GenPrivateKey().PublicKey().Address(), 1), owner, ownerNonce)
	require.Error(t, res.IsError())
	// Rejected transaction did not consume the sequence.
	ownerNonce = NewNonce(wc, ownerAddr)

	count, err := wc.BeneficiaryCount(ownerAddr)
	require.NoError(t, err)
	assert.Equal(t, int32(2), count)

	benefs, err := wc.Beneficiaries(ownerAddr)
	require.NoError(t, err)
	require.Len(t, benefs.Beneficiaries, 2)
	assert.EqualValues(t, alice, benefs.Beneficiaries[0].Address)
	assert.EqualValues(t, bob, benefs.Beneficiaries[1].Address)

	b, err := wc.GetBeneficiary(ownerAddr, bob)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, int32(25), b.Share)

	faucetNonce := NewNonce(wc, src)
	amount := coin.NewCoin(1000, 0, initBalance.Ticker)
	res = submit(BuildSendTx(src, wc.CustodyAddress(ownerAddr), amount, "inheritance"), faucet, faucetNonce)
	require.NoError(t, res.IsError())

	funds, err := wc.CustodyBalance(ownerAddr)
	require.NoError(t, err)
	require.Len(t, funds, 1)
	assert.Equal(t, int64(1000), funds[0].Whole)

	// The inactivity period is one second, block time must pass it.
	executor := GenPrivateKey()
	executorNonce := NewNonce(wc, executor.PublicKey().Address())
	deadline := time.Now().Add(10 * time.Second)
	for {
		res = submit(BuildExecuteTx(ownerAddr), executor, executorNonce)
		if res.IsError() == nil {
			break
		}
		executorNonce = NewNonce(wc, executor.PublicKey().Address())
		if time.Now().After(deadline) {
			t.Fatalf("cannot execute will: %s", res.IsError())
		}
		time.Sleep(200 * time.Millisecond)
	}

	aliceWallet, err := wc.GetWallet(alice)
	require.NoError(t, err)
	require.NotNil(t, aliceWallet)
	assert.Equal(t, int64(750), aliceWallet.Wallet.Coins[0].Whole)

	bobWallet, err := wc.GetWallet(bob)
	require.NoError(t, err)
	require.NotNil(t, bobWallet)
	assert.Equal(t, int64(250), bobWallet.Wallet.Coins[0].Whole)

	w, err := wc.GetWill(ownerAddr)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, int32(1), w.Will.ExecutionCount)
	assert.Equal(t, "sha256:01", w.Will.DocumentRef)
}

func TestSubscribeHeaders(t *testing.T) {
	wc := NewClient(NewLocalConnection(node))

	headers := make(chan *Header, 4)
	cancel, err := wc.SubscribeHeaders(headers)
	require.NoError(t, err)

	h := <-headers
	h2 := <-headers
	cancel()

	assert.NotEmpty(t, h.ChainID)
	assert.Equal(t, h.ChainID, h2.ChainID)
	assert.Equal(t, h.Height+1, h2.Height)
}
