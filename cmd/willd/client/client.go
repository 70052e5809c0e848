package client

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/iov-one/digiheir/x/will"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/pkg/errors"
	cmn "github.com/tendermint/tendermint/libs/common"
	tmpubsub "github.com/tendermint/tendermint/libs/pubsub"
	"github.com/tendermint/tendermint/rpc/client"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

type Header = tmtypes.Header
type Status = ctypes.ResultStatus
type GenesisDoc = tmtypes.GenesisDoc

const BroadcastTxSyncDefaultTimeOut = 15 * time.Second

var QueryNewBlockHeader = tmtypes.EventQueryNewBlockHeader

// Client is an interface to interact with a will registry node.
type Client interface {
	TendermintClient() client.Client
	GetUser(addr weave.Address) (*UserResponse, error)
	GetWallet(addr weave.Address) (*WalletResponse, error)
	GetWill(owner weave.Address) (*WillResponse, error)
	Beneficiaries(owner weave.Address) (*BeneficiariesResponse, error)
	BroadcastTx(tx weave.Tx) BroadcastTxResponse
	BroadcastTxSync(tx weave.Tx, timeout time.Duration) BroadcastTxResponse
	AbciQuery(path string, data []byte) (AbciResponse, error)
}

// WillClient is a tendermint client wrapped to provide simple access to the
// data structures of the will registry.
type WillClient struct {
	conn client.Client
	// subscriber is a unique identifier for subscriptions
	subscriber string
}

var _ Client = (*WillClient)(nil)

// NewClient wraps a WillClient around an existing tendermint client
// connection.
func NewClient(conn client.Client) *WillClient {
	return &WillClient{
		conn:       conn,
		subscriber: "willd-client-" + hex.EncodeToString(cmn.RandBytes(4)),
	}
}

func (wc *WillClient) TendermintClient() client.Client {
	return wc.conn
}

// Nonce has a client/address pair, queries for the nonce
// and caches recent nonce locally to quickly sign
type Nonce struct {
	mutex     sync.Mutex
	client    Client
	addr      weave.Address
	nonce     int64
	fromQuery bool
}

// NewNonce creates a nonce for a client / address pair.
// Call Query to force a query, Next to use cache if possible
func NewNonce(client Client, addr weave.Address) *Nonce {
	return &Nonce{client: client, addr: addr}
}

// Query always queries the blockchain for the next nonce
func (n *Nonce) Query() (int64, error) {
	user, err := n.client.GetUser(n.addr)
	if err != nil {
		return 0, err
	}
	n.mutex.Lock()
	defer n.mutex.Unlock()
	if user != nil {
		n.nonce = user.UserData.Sequence
	} else {
		n.nonce = 0 // new account starts at 0
	}
	n.fromQuery = true
	return n.nonce, nil
}

// Next will use a cached value if present, otherwise Query.
// It will always increment by 1, assuming last nonce
// was properly used.
func (n *Nonce) Next() (int64, error) {
	n.mutex.Lock()
	uninitialized := !n.fromQuery && n.nonce == 0
	n.mutex.Unlock()
	if uninitialized {
		return n.Query()
	}
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.nonce++
	n.fromQuery = false
	return n.nonce, nil
}

// Status will return the raw status from the node
func (wc *WillClient) Status() (*Status, error) {
	return wc.conn.Status()
}

// Genesis will return the genesis directly from the node
func (wc *WillClient) Genesis() (*GenesisDoc, error) {
	gen, err := wc.conn.Genesis()
	if err != nil {
		return nil, err
	}
	return gen.Genesis, nil
}

// ChainID will parse out the chainID from the genesis
func (wc *WillClient) ChainID() (string, error) {
	gen, err := wc.Genesis()
	if err != nil {
		return "", err
	}
	return gen.ChainID, nil
}

// Height will parse out the Height from the status result
func (wc *WillClient) Height() (int64, error) {
	status, err := wc.conn.Status()
	if err != nil {
		return -1, err
	}
	return status.SyncInfo.LatestBlockHeight, nil
}

// AbciResponse contains a query result:
// a (possibly empty) list of key-value pairs, and the height
// at which it queried
type AbciResponse struct {
	Models []weave.Model
	Height int64
}

// AbciQuery calls abci query on tendermint rpc,
// verifies if it is an error or empty, and if there is
// data pulls out the ResultSets from keys and values into
// a useful AbciResponse struct
func (wc *WillClient) AbciQuery(path string, data []byte) (AbciResponse, error) {
	var out AbciResponse

	q, err := wc.conn.ABCIQuery(path, data)
	if err != nil {
		return out, err
	}
	resp := q.Response
	if resp.IsErr() {
		return out, errors.Errorf("(%d): %s", resp.Code, resp.Log)
	}
	out.Height = resp.Height

	if len(resp.Key) == 0 {
		return out, nil
	}

	var keys, vals app.ResultSet
	if err := keys.Unmarshal(resp.Key); err != nil {
		return out, errors.Wrap(err, "keys")
	}
	if err := vals.Unmarshal(resp.Value); err != nil {
		return out, errors.Wrap(err, "values")
	}
	out.Models, err = app.JoinResults(&keys, &vals)
	return out, err
}

// BroadcastTxResponse is the result of submitting a transaction.
type BroadcastTxResponse struct {
	Error    error                           // not-nil if there was an error sending
	Response *ctypes.ResultBroadcastTxCommit // not-nil if we got response from node
}

// IsError returns the error for failure if it failed,
// or null if it succeeded
func (b BroadcastTxResponse) IsError() error {
	if b.Error != nil {
		return b.Error
	}
	if b.Response.CheckTx.IsErr() {
		ctx := b.Response.CheckTx
		return errors.Errorf("CheckTx error: (%d) %s", ctx.Code, ctx.Log)
	}
	if b.Response.DeliverTx.IsErr() {
		dtx := b.Response.DeliverTx
		return errors.Errorf("DeliverTx error: (%d) %s", dtx.Code, dtx.Log)
	}
	return nil
}

// BroadcastTx serializes a signed transaction and writes to the
// blockchain. It returns when the tx is committed to the
// blockchain.
func (wc *WillClient) BroadcastTx(tx weave.Tx) BroadcastTxResponse {
	out := make(chan BroadcastTxResponse, 1)
	defer close(out)
	go wc.BroadcastTxAsync(tx, out)
	return <-out
}

// BroadcastTxAsync can be run in a goroutine and will output
// the result or error to the given channel.
func (wc *WillClient) BroadcastTxAsync(tx weave.Tx, out chan<- BroadcastTxResponse) {
	data, err := tx.Marshal()
	if err != nil {
		out <- BroadcastTxResponse{Error: err}
		return
	}
	res, err := wc.conn.BroadcastTxCommit(data)
	out <- BroadcastTxResponse{
		Error:    err,
		Response: res,
	}
}

// BroadcastTxSync submits the transaction and blocks until it is included in
// a block or the timeout is reached.
func (wc *WillClient) BroadcastTxSync(tx weave.Tx, timeout time.Duration) BroadcastTxResponse {
	data, err := tx.Marshal()
	if err != nil {
		return BroadcastTxResponse{Error: err}
	}

	res, err := wc.conn.BroadcastTxSync(data)
	if err != nil {
		return BroadcastTxResponse{Error: err}
	}
	if res.Code != 0 {
		return BroadcastTxResponse{Error: errors.WithMessage(fmt.Errorf("CheckTx failed with code %d", res.Code), res.Log)}
	}

	evt, err := wc.WaitForTxEvent(data, tmtypes.EventTx, timeout)
	if err != nil {
		return BroadcastTxResponse{Error: err}
	}
	txe, ok := evt.(tmtypes.EventDataTx)
	if !ok {
		return BroadcastTxResponse{Error: errors.Errorf("unexpected event type %T", evt)}
	}
	return BroadcastTxResponse{
		Response: &ctypes.ResultBroadcastTxCommit{
			DeliverTx: txe.Result,
			Height:    txe.Height,
			Hash:      txe.Tx.Hash(),
		},
	}
}

// WaitForTxEvent blocks until an event of given transaction is published.
func (wc *WillClient) WaitForTxEvent(tx tmtypes.Tx, evtTyp string, timeout time.Duration) (tmtypes.TMEventData, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	query := tmtypes.EventQueryTxFor(tx)

	uuid := hex.EncodeToString(append(tx.Hash(), cmn.RandBytes(2)...))
	evts, err := wc.conn.Subscribe(ctx, uuid, query.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe")
	}
	defer wc.conn.UnsubscribeAll(ctx, uuid)

	select {
	case evt := <-evts:
		return evt.Data.(tmtypes.TMEventData), nil
	case <-ctx.Done():
		return nil, errors.New("timed out waiting for event")
	}
}

// SubscribeHeaders queries for headers and starts a goroutine
// to typecase the events into Headers. Returns a cancel
// function.
func (wc *WillClient) SubscribeHeaders(out chan<- *Header) (func(), error) {
	pipe, cancel, err := wc.Subscribe(QueryNewBlockHeader)
	if err != nil {
		return nil, err
	}
	go func() {
		defer close(out)
		for msg := range pipe {
			evt, ok := msg.Data.(tmtypes.EventDataNewBlockHeader)
			if !ok {
				continue
			}
			out <- &evt.Header
		}
	}()
	return cancel, nil
}

// Subscribe will take an arbitrary query and push all events to
// the returned channel. If there is no error,
// returns a cancel function that can be called to cancel
// the subscription
func (wc *WillClient) Subscribe(query tmpubsub.Query) (<-chan ctypes.ResultEvent, func(), error) {
	ctx := context.Background()
	out, err := wc.conn.Subscribe(ctx, wc.subscriber, query.String())
	if err != nil {
		return out, nil, err
	}
	cancel := func() {
		wc.conn.Unsubscribe(ctx, wc.subscriber, query.String())
	}
	return out, cancel, nil
}

// WalletResponse is a response on a query for a wallet
type WalletResponse struct {
	Address weave.Address
	Wallet  cash.Set
	Height  int64
}

// GetWallet will return a wallet given an address
// If non wallet is present, it will return (nil, nil)
// Error codes are used when the query failed on the server
func (wc *WillClient) GetWallet(addr weave.Address) (*WalletResponse, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid address")
	}
	resp, err := wc.AbciQuery("/wallets", addr)
	if err != nil {
		return nil, err
	}
	if len(resp.Models) == 0 {
		return nil, nil
	}
	model := resp.Models[0]
	// key is the address prefixed with "cash:"
	acct := weave.Address(model.Key[5:])
	if !addr.Equals(acct) {
		return nil, errors.Errorf("mismatch, queried %s, returned %s", addr, acct)
	}
	out := WalletResponse{
		Address: acct,
		Height:  resp.Height,
	}
	if err := out.Wallet.Unmarshal(model.Value); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserResponse is a response on a query for a User
type UserResponse struct {
	Address  weave.Address
	UserData sigs.UserData
	Height   int64
}

// GetUser will return nonce and public key registered
// for a given address if it was ever used.
// If it returns (nil, nil), then this address never signed
// a transaction before (and can use nonce = 0)
func (wc *WillClient) GetUser(addr weave.Address) (*UserResponse, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid address")
	}
	resp, err := wc.AbciQuery("/auth", addr)
	if err != nil {
		return nil, err
	}
	if len(resp.Models) == 0 {
		return nil, nil
	}
	model := resp.Models[0]
	// key is the address prefixed with "sigs:"
	acct := weave.Address(model.Key[5:])
	if !addr.Equals(acct) {
		return nil, errors.Errorf("mismatch, queried %s, returned %s", addr, acct)
	}
	out := UserResponse{
		Address: acct,
		Height:  resp.Height,
	}
	if err := out.UserData.Unmarshal(model.Value); err != nil {
		return nil, err
	}
	return &out, nil
}

// WillResponse is a response on a query for a will.
type WillResponse struct {
	Will   will.Will
	Height int64
}

// GetWill returns the will registered by given owner. If no will exists, it
// returns (nil, nil).
func (wc *WillClient) GetWill(owner weave.Address) (*WillResponse, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid owner")
	}
	resp, err := wc.AbciQuery("/wills", owner)
	if err != nil {
		return nil, err
	}
	if len(resp.Models) == 0 {
		return nil, nil
	}
	out := WillResponse{Height: resp.Height}
	if err := out.Will.Unmarshal(resp.Models[0].Value); err != nil {
		return nil, errors.Wrap(err, "will")
	}
	if !owner.Equals(out.Will.Owner) {
		return nil, errors.Errorf("mismatch, queried %s, returned %s", owner, out.Will.Owner)
	}
	return &out, nil
}

// BeneficiaryCount returns the number of beneficiary slots registered for
// the will of given owner.
func (wc *WillClient) BeneficiaryCount(owner weave.Address) (int32, error) {
	w, err := wc.GetWill(owner)
	if err != nil {
		return 0, err
	}
	if w == nil {
		return 0, errors.Errorf("no will for %s", owner)
	}
	return w.Will.BeneficiaryCount, nil
}

// GetBeneficiary returns a single beneficiary entry of the will of given
// owner. If the address is not a beneficiary, it returns (nil, nil).
func (wc *WillClient) GetBeneficiary(owner, addr weave.Address) (*will.Beneficiary, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid beneficiary")
	}
	resp, err := wc.AbciQuery("/beneficiaries", will.BeneficiaryKey(owner, addr))
	if err != nil {
		return nil, err
	}
	if len(resp.Models) == 0 {
		return nil, nil
	}
	var b will.Beneficiary
	if err := b.Unmarshal(resp.Models[0].Value); err != nil {
		return nil, errors.Wrap(err, "beneficiary")
	}
	return &b, nil
}

// BeneficiariesResponse is a response on a query for all beneficiaries of a
// will.
type BeneficiariesResponse struct {
	Beneficiaries []will.Beneficiary
	Height        int64
}

// Beneficiaries returns all beneficiaries declared by given owner, ordered by
// their position.
func (wc *WillClient) Beneficiaries(owner weave.Address) (*BeneficiariesResponse, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid owner")
	}
	resp, err := wc.AbciQuery("/beneficiaries/owner", owner)
	if err != nil {
		return nil, err
	}
	out := BeneficiariesResponse{
		Beneficiaries: make([]will.Beneficiary, len(resp.Models)),
		Height:        resp.Height,
	}
	for i, m := range resp.Models {
		if err := out.Beneficiaries[i].Unmarshal(m.Value); err != nil {
			return nil, errors.Wrapf(err, "beneficiary %d", i)
		}
	}
	sort.Slice(out.Beneficiaries, func(i, j int) bool {
		return out.Beneficiaries[i].Position < out.Beneficiaries[j].Position
	})
	return &out, nil
}

// CustodyAddress returns the address that must be funded in order to give
// the will of given owner something to distribute.
func (wc *WillClient) CustodyAddress(owner weave.Address) weave.Address {
	return will.CustodyAddress(owner)
}

// CustodyBalance returns all coins held by the custody account of given
// owner's will. An empty custody account returns no coins.
func (wc *WillClient) CustodyBalance(owner weave.Address) (coin.Coins, error) {
	w, err := wc.GetWallet(will.CustodyAddress(owner))
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	return w.Wallet.Coins, nil
}
