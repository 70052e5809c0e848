package will

import (
	"math/big"
	"strconv"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	tagCreated              = "will/created"
	tagDocumentRef          = "will/document_ref"
	tagBeneficiaryAdded     = "will/beneficiary_added"
	tagShare                = "will/share"
	tagInactivityPeriod     = "will/inactivity_period_updated"
	tagUpdated              = "will/updated"
	tagExecuted             = "will/executed"
	tagExecutedBeneficiary  = "will/beneficiary"
	tagExecutedPayoutAmount = "will/amount"
)

// CashController is the subset of the cash extension functionality required
// to execute a will.
type CashController interface {
	Balance(weave.KVStore, weave.Address) (coin.Coins, error)
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

func RegisterQuery(qr weave.QueryRouter) {
	NewWillBucket().Register("wills", qr)
	NewBeneficiaryBucket().Register("beneficiaries", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator, cashctrl CashController) {
	r = migration.SchemaMigratingRegistry("will", r)

	wills := NewWillBucket()
	beneficiaries := NewBeneficiaryBucket()

	r.Handle(&CreateMsg{}, &createHandler{
		auth:  auth,
		wills: wills,
	})
	r.Handle(&AddBeneficiaryMsg{}, &addBeneficiaryHandler{
		auth:          auth,
		wills:         wills,
		beneficiaries: beneficiaries,
	})
	r.Handle(&UpdateInactivityPeriodMsg{}, &updateInactivityPeriodHandler{
		auth:  auth,
		wills: wills,
	})
	r.Handle(&RecordActivityMsg{}, &recordActivityHandler{
		auth:  auth,
		wills: wills,
	})
	r.Handle(&UpdateDocumentMsg{}, &updateDocumentHandler{
		auth:  auth,
		wills: wills,
	})
	r.Handle(&ExecuteMsg{}, &executeHandler{
		wills:         wills,
		beneficiaries: beneficiaries,
		cashctrl:      cashctrl,
	})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler("will", &Configuration{}, auth, migration.CurrentAdmin))
}

// ownerOf returns the owner address that a message acts on behalf of. An
// empty declared owner means the only signer of the transaction. Signature
// order is not part of the signed content, so a transaction with several
// signers must declare the owner. A declared owner must have signed the
// transaction.
func ownerOf(ctx weave.Context, auth x.Authenticator, declared weave.Address) (weave.Address, error) {
	if len(declared) == 0 {
		switch signers := auth.GetConditions(ctx); len(signers) {
		case 0:
			return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
		case 1:
			return signers[0].Address(), nil
		default:
			return nil, errors.Wrap(errors.ErrUnauthorized, "owner must be declared when signed by many")
		}
	}
	if !auth.HasAddress(ctx, declared) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return declared, nil
}

// ownedWill returns the will of the owner authenticated for this request.
func ownedWill(ctx weave.Context, db weave.KVStore, auth x.Authenticator, wills orm.ModelBucket, declared weave.Address) (*Will, error) {
	owner, err := ownerOf(ctx, auth, declared)
	if err != nil {
		return nil, err
	}
	var will Will
	if err := wills.One(db, owner, &will); err != nil {
		return nil, errors.Wrap(err, "no such will")
	}
	return &will, nil
}

func validateDocumentRef(db weave.KVStore, ref string) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if len(ref) > int(conf.MaxDocumentRefLength) {
		return errors.Wrapf(errors.ErrInput, "document reference must not be longer than %d", conf.MaxDocumentRefLength)
	}
	return nil
}

type createHandler struct {
	auth  x.Authenticator
	wills orm.ModelBucket
}

func (h *createHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *createHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	will := Will{
		Metadata:         &weave.Metadata{Schema: 1},
		Owner:            owner,
		DocumentRef:      msg.DocumentRef,
		LastActivity:     weave.AsUnixTime(now),
		InactivityPeriod: msg.InactivityPeriod,
	}
	if _, err := h.wills.Put(db, owner, &will); err != nil {
		return nil, errors.Wrap(err, "store will")
	}
	return &weave.DeliverResult{
		Data: owner,
		Tags: []common.KVPair{
			{Key: []byte(tagCreated), Value: []byte(owner.String())},
			{Key: []byte(tagDocumentRef), Value: []byte(msg.DocumentRef)},
		},
	}, nil
}

func (h *createHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateMsg, weave.Address, error) {
	var msg CreateMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := ownerOf(ctx, h.auth, msg.Owner)
	if err != nil {
		return nil, nil, err
	}
	if err := validateDocumentRef(db, msg.DocumentRef); err != nil {
		return nil, nil, err
	}
	switch err := h.wills.Has(db, owner); {
	case err == nil:
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "will of %s already exists", owner)
	case errors.ErrNotFound.Is(err):
		// All good.
	default:
		return nil, nil, errors.Wrap(err, "cannot check will existence")
	}
	return &msg, owner, nil
}

type addBeneficiaryHandler struct {
	auth          x.Authenticator
	wills         orm.ModelBucket
	beneficiaries orm.ModelBucket
}

func (h *addBeneficiaryHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *addBeneficiaryHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, will, benef, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if benef.Position == will.BeneficiaryCount {
		will.BeneficiaryCount++
		if _, err := h.wills.Put(db, will.Owner, will); err != nil {
			return nil, errors.Wrap(err, "store will")
		}
	}
	key := BeneficiaryKey(will.Owner, msg.Beneficiary)
	if _, err := h.beneficiaries.Put(db, key, benef); err != nil {
		return nil, errors.Wrap(err, "store beneficiary")
	}
	return &weave.DeliverResult{
		Data: will.Owner,
		Tags: []common.KVPair{
			{Key: []byte(tagBeneficiaryAdded), Value: []byte(msg.Beneficiary.String())},
			{Key: []byte(tagShare), Value: []byte(strconv.Itoa(int(msg.Share)))},
		},
	}, nil
}

// validate returns the will and the beneficiary entry as it should be
// stored. A new beneficiary is assigned the next free position.
func (h *addBeneficiaryHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AddBeneficiaryMsg, *Will, *Beneficiary, error) {
	var msg AddBeneficiaryMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	will, err := ownedWill(ctx, db, h.auth, h.wills, msg.Owner)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := validateBeneficiaryAddress(will.Owner, msg.Beneficiary); err != nil {
		return nil, nil, nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}

	existing, err := ownerBeneficiaries(db, h.beneficiaries, will.Owner)
	if err != nil {
		return nil, nil, nil, err
	}
	benef := &Beneficiary{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    will.Owner,
		Address:  msg.Beneficiary,
		Share:    msg.Share,
		Position: will.BeneficiaryCount,
	}
	total := int64(msg.Share)
	for _, b := range existing {
		if b.Address.Equals(msg.Beneficiary) {
			// Update keeps the original position and the share is replaced.
			benef.Metadata = b.Metadata
			benef.Position = b.Position
			continue
		}
		total += int64(b.Share)
	}
	if total > maxShare {
		return nil, nil, nil, errors.Wrapf(ErrInvalidShare, "total share would be %d", total)
	}
	if benef.Position == will.BeneficiaryCount && will.BeneficiaryCount >= conf.MaxBeneficiaries {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "a will cannot have more than %d beneficiaries", conf.MaxBeneficiaries)
	}
	if err := benef.Validate(); err != nil {
		return nil, nil, nil, errors.Wrap(err, "beneficiary")
	}
	return &msg, will, benef, nil
}

type updateInactivityPeriodHandler struct {
	auth  x.Authenticator
	wills orm.ModelBucket
}

func (h *updateInactivityPeriodHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *updateInactivityPeriodHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, will, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	will.InactivityPeriod = msg.InactivityPeriod
	if _, err := h.wills.Put(db, will.Owner, will); err != nil {
		return nil, errors.Wrap(err, "store will")
	}
	return &weave.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte(tagUpdated), Value: []byte(will.Owner.String())},
			{Key: []byte(tagInactivityPeriod), Value: []byte(strconv.Itoa(int(msg.InactivityPeriod)))},
		},
	}, nil
}

func (h *updateInactivityPeriodHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateInactivityPeriodMsg, *Will, error) {
	var msg UpdateInactivityPeriodMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	will, err := ownedWill(ctx, db, h.auth, h.wills, msg.Owner)
	if err != nil {
		return nil, nil, err
	}
	return &msg, will, nil
}

type recordActivityHandler struct {
	auth  x.Authenticator
	wills orm.ModelBucket
}

func (h *recordActivityHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *recordActivityHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	will, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := touch(ctx, will); err != nil {
		return nil, err
	}
	if _, err := h.wills.Put(db, will.Owner, will); err != nil {
		return nil, errors.Wrap(err, "store will")
	}
	return &weave.DeliverResult{}, nil
}

func (h *recordActivityHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Will, error) {
	var msg RecordActivityMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return ownedWill(ctx, db, h.auth, h.wills, msg.Owner)
}

// touch sets the last activity of the will to the current block time. Last
// activity never moves backward.
func touch(ctx weave.Context, will *Will) error {
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return errors.Wrap(err, "block time")
	}
	if t := weave.AsUnixTime(now); t > will.LastActivity {
		will.LastActivity = t
	}
	return nil
}

type updateDocumentHandler struct {
	auth  x.Authenticator
	wills orm.ModelBucket
}

func (h *updateDocumentHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *updateDocumentHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, will, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	will.DocumentRef = msg.DocumentRef
	if err := touch(ctx, will); err != nil {
		return nil, err
	}
	if _, err := h.wills.Put(db, will.Owner, will); err != nil {
		return nil, errors.Wrap(err, "store will")
	}
	return &weave.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte(tagUpdated), Value: []byte(will.Owner.String())},
			{Key: []byte(tagDocumentRef), Value: []byte(msg.DocumentRef)},
		},
	}, nil
}

func (h *updateDocumentHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateDocumentMsg, *Will, error) {
	var msg UpdateDocumentMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	will, err := ownedWill(ctx, db, h.auth, h.wills, msg.Owner)
	if err != nil {
		return nil, nil, err
	}
	if err := validateDocumentRef(db, msg.DocumentRef); err != nil {
		return nil, nil, err
	}
	return &msg, will, nil
}

type executeHandler struct {
	wills         orm.ModelBucket
	beneficiaries orm.ModelBucket
	cashctrl      CashController
}

func (h *executeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	will, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// Transfers are attempted on a throw away cache so that a will that
	// cannot be paid out is rejected before it is delivered.
	cache, _, err := h.distribute(ctx, db, will)
	if err != nil {
		return nil, err
	}
	cache.Discard()
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *executeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	will, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	cache, payouts, err := h.distribute(ctx, db, will)
	if err != nil {
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write payouts")
	}

	res := ExecuteResult{Payouts: payouts}
	raw, err := res.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal result")
	}
	log := weave.GetLogger(ctx)
	tags := make([]common.KVPair, 0, 3*len(payouts))
	for _, p := range payouts {
		log.Info("will payout", "owner", will.Owner, "beneficiary", p.Beneficiary, "amount", p.Amount.String())
		tags = append(tags,
			common.KVPair{Key: []byte(tagExecuted), Value: []byte(will.Owner.String())},
			common.KVPair{Key: []byte(tagExecutedBeneficiary), Value: []byte(p.Beneficiary.String())},
			common.KVPair{Key: []byte(tagExecutedPayoutAmount), Value: []byte(p.Amount.String())},
		)
	}
	return &weave.DeliverResult{Data: raw, Tags: tags}, nil
}

// distribute splits the custody funds that were not retained by a previous
// execution between the beneficiaries. All changes are done on a cache
// returned to the caller. On failure the cache is already discarded.
func (h *executeHandler) distribute(ctx weave.Context, db weave.KVStore, will *Will) (weave.KVCacheWrap, []*Payout, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	beneficiaries, err := ownerBeneficiaries(db, h.beneficiaries, will.Owner)
	if err != nil {
		return nil, nil, err
	}
	custody := CustodyAddress(will.Owner)
	funds, err := nativeBalance(db, h.cashctrl, custody, conf.Ticker)
	if err != nil {
		return nil, nil, err
	}
	available, err := unretained(funds, will.Retained)
	if err != nil {
		return nil, nil, err
	}
	payouts, err := computePayouts(available, beneficiaries)
	if err != nil {
		return nil, nil, err
	}
	retained := funds
	for _, p := range payouts {
		if retained, err = retained.Subtract(p.Amount); err != nil {
			return nil, nil, errors.Wrap(err, "retained funds")
		}
	}

	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "block time")
	}
	cacheable, ok := db.(weave.CacheableKVStore)
	if !ok {
		return nil, nil, errors.Wrap(errors.ErrState, "store does not support batching")
	}
	cache := cacheable.CacheWrap()

	will.LastExecuted = weave.AsUnixTime(now)
	will.ExecutionCount++
	will.Retained = &retained
	if _, err := h.wills.Put(cache, will.Owner, will); err != nil {
		cache.Discard()
		return nil, nil, errors.Wrap(err, "store will")
	}
	for _, p := range payouts {
		if err := h.cashctrl.MoveCoins(cache, custody, p.Beneficiary, p.Amount); err != nil {
			cache.Discard()
			return nil, nil, errors.Wrapf(ErrTransferFailed, "payout to %s: %s", p.Beneficiary, err)
		}
	}
	return cache, payouts, nil
}

func (h *executeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Will, error) {
	var msg ExecuteMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	var will Will
	if err := h.wills.One(db, msg.Owner, &will); err != nil {
		return nil, errors.Wrap(err, "no such will")
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	if weave.AsUnixTime(now) < will.ExecutableAt() {
		return nil, errors.Wrapf(ErrInactivityNotMet, "too early, executable at %s", will.ExecutableAt().Time())
	}
	return &will, nil
}

// nativeBalance returns the amount of given ticker tokens held by the
// wallet. A wallet that does not exist holds nothing.
func nativeBalance(db weave.KVStore, ctrl CashController, wallet weave.Address, ticker string) (coin.Coin, error) {
	zero := coin.Coin{Ticker: ticker}
	coins, err := ctrl.Balance(db, wallet)
	switch {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return zero, nil
	default:
		return zero, errors.Wrap(err, "custody balance")
	}
	for _, c := range coins {
		if c.Ticker == ticker {
			return *c, nil
		}
	}
	return zero, nil
}

// unretained returns the part of funds that is not retained. Retained funds
// of a different ticker do not reduce the amount.
func unretained(funds coin.Coin, retained *coin.Coin) (coin.Coin, error) {
	if retained == nil || !retained.SameType(funds) {
		return funds, nil
	}
	available, err := funds.Subtract(*retained)
	if err != nil {
		return funds, errors.Wrap(err, "unretained funds")
	}
	if !available.IsNonNegative() {
		return coin.Coin{Ticker: funds.Ticker}, nil
	}
	return available, nil
}

// computePayouts splits funds between beneficiaries according to their
// shares. Each amount is rounded down to the smallest fractional unit.
// Beneficiaries that would receive nothing are skipped.
func computePayouts(funds coin.Coin, beneficiaries []*Beneficiary) ([]*Payout, error) {
	if !funds.IsPositive() {
		return nil, nil
	}
	fracUnit := big.NewInt(coin.FracUnit)
	total := new(big.Int).Mul(big.NewInt(funds.Whole), fracUnit)
	total.Add(total, big.NewInt(funds.Fractional))

	var payouts []*Payout
	for _, b := range beneficiaries {
		amount := new(big.Int).Mul(total, big.NewInt(int64(b.Share)))
		amount.Quo(amount, big.NewInt(maxShare))
		if amount.Sign() == 0 {
			continue
		}
		whole, frac := new(big.Int).QuoRem(amount, fracUnit, new(big.Int))
		c := coin.NewCoin(whole.Int64(), frac.Int64(), funds.Ticker)
		if err := c.Validate(); err != nil {
			return nil, errors.Wrapf(err, "payout of %s", b.Address)
		}
		payouts = append(payouts, &Payout{Beneficiary: b.Address, Amount: c})
	}
	return payouts, nil
}
