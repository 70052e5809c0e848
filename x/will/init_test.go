package will

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestGenesisInitializer(t *testing.T) {
	const genesis = `
	{
		"conf": {
			"will": {
				"owner": "cond:foo/bar/000000000000000001",
				"ticker": "IOV",
				"max_beneficiaries": 5,
				"max_document_ref_length": 128
			}
		},
		"will": [
			{
				"owner": "seq:test/alice/1",
				"document_ref": "sha256:abcd",
				"last_activity": 1572247483,
				"inactivity_period": "720h",
				"beneficiaries": [
					{"address": "seq:test/bob/1", "share": 70},
					{"address": "seq:test/carol/1", "share": 30}
				]
			}
		]
	}
	`

	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "will")

	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	conf, err := loadConf(db)
	if err != nil {
		t.Fatalf("cannot load configuration: %s", err)
	}
	assert.Equal(t, "IOV", conf.Ticker)
	assert.Equal(t, int32(5), conf.MaxBeneficiaries)

	alice := weave.NewCondition("test", "alice", weavetest.SequenceID(1)).Address()
	bob := weave.NewCondition("test", "bob", weavetest.SequenceID(1)).Address()
	carol := weave.NewCondition("test", "carol", weavetest.SequenceID(1)).Address()

	var w Will
	if err := NewWillBucket().One(db, alice, &w); err != nil {
		t.Fatalf("cannot get will from the database: %s", err)
	}
	assert.Equal(t, "sha256:abcd", w.DocumentRef)
	assert.Equal(t, weave.UnixTime(1572247483), w.LastActivity)
	assert.Equal(t, weave.UnixDuration(720*60*60), w.InactivityPeriod)
	assert.Equal(t, int32(2), w.BeneficiaryCount)

	bs, err := ownerBeneficiaries(db, NewBeneficiaryBucket(), alice)
	if err != nil {
		t.Fatalf("cannot list beneficiaries: %s", err)
	}
	if len(bs) != 2 {
		t.Fatalf("want 2 beneficiaries, got %d", len(bs))
	}
	assert.Equal(t, bob, bs[0].Address)
	assert.Equal(t, int32(70), bs[0].Share)
	assert.Equal(t, carol, bs[1].Address)
	assert.Equal(t, int32(1), bs[1].Position)
}

func TestGenesisInitializerRejectsInvalidWills(t *testing.T) {
	alice := weave.NewCondition("test", "alice", weavetest.SequenceID(1)).Address()

	cases := map[string]struct {
		Wills   string
		WantErr *errors.Error
	}{
		"total share exceeds one hundred percent": {
			Wills: `[{
				"owner": "seq:test/alice/1",
				"last_activity": 1572247483,
				"inactivity_period": 60,
				"beneficiaries": [
					{"address": "seq:test/bob/1", "share": 70},
					{"address": "seq:test/carol/1", "share": 31}
				]
			}]`,
			WantErr: ErrInvalidShare,
		},
		"beneficiary declared twice": {
			Wills: `[{
				"owner": "seq:test/alice/1",
				"last_activity": 1572247483,
				"inactivity_period": 60,
				"beneficiaries": [
					{"address": "seq:test/bob/1", "share": 30},
					{"address": "seq:test/bob/1", "share": 30}
				]
			}]`,
			WantErr: errors.ErrDuplicate,
		},
		"owner is its own beneficiary": {
			Wills: `[{
				"owner": "seq:test/alice/1",
				"last_activity": 1572247483,
				"inactivity_period": 60,
				"beneficiaries": [
					{"address": "seq:test/alice/1", "share": 30}
				]
			}]`,
			WantErr: errors.ErrInput,
		},
		"custody account is a beneficiary": {
			Wills: fmt.Sprintf(`[{
				"owner": "seq:test/alice/1",
				"last_activity": 1572247483,
				"inactivity_period": 60,
				"beneficiaries": [
					{"address": %q, "share": 30}
				]
			}]`, CustodyAddress(alice).String()),
			WantErr: errors.ErrInput,
		},
		"will declared twice": {
			Wills: `[
				{"owner": "seq:test/alice/1", "last_activity": 1572247483, "inactivity_period": 60},
				{"owner": "seq:test/alice/1", "last_activity": 1572247483, "inactivity_period": 90}
			]`,
			WantErr: errors.ErrDuplicate,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			genesis := `{
				"conf": {
					"will": {
						"owner": "cond:foo/bar/000000000000000001",
						"ticker": "IOV",
						"max_beneficiaries": 5,
						"max_document_ref_length": 128
					}
				},
				"will": ` + tc.Wills + `
			}`
			var opts weave.Options
			if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
				t.Fatalf("cannot unmarshal genesis: %s", err)
			}
			db := store.MemStore()
			migration.MustInitPkg(db, "will")

			var ini Initializer
			if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); !tc.WantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.WantErr, err)
			}
		})
	}
}

func TestGenesisInitializerWithoutConfiguration(t *testing.T) {
	db := store.MemStore()
	var ini Initializer
	if err := ini.FromGenesis(weave.Options{}, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("want no error, got %+v", err)
	}
	if _, err := loadConf(db); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want no configuration, got %+v", err)
	}
}
