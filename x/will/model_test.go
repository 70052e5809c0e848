package will

import (
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestWillValidate(t *testing.T) {
	owner := weavetest.NewCondition().Address()

	cases := map[string]struct {
		model    *Will
		wantErrs map[string]*errors.Error
	}{
		"valid will": {
			model: &Will{
				Metadata:         &weave.Metadata{Schema: 1},
				Owner:            owner,
				LastActivity:     1000,
				InactivityPeriod: 100,
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":         nil,
				"Owner":            nil,
				"LastActivity":     nil,
				"InactivityPeriod": nil,
				"LastExecuted":     nil,
			},
		},
		"inactivity period must be positive": {
			model: &Will{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        owner,
				LastActivity: 1000,
			},
			wantErrs: map[string]*errors.Error{
				"InactivityPeriod": ErrInvalidPeriod,
			},
		},
		"counters must not be negative": {
			model: &Will{
				Metadata:         &weave.Metadata{Schema: 1},
				Owner:            owner,
				LastActivity:     1000,
				InactivityPeriod: 100,
				BeneficiaryCount: -1,
				ExecutionCount:   -1,
			},
			wantErrs: map[string]*errors.Error{
				"BeneficiaryCount": errors.ErrState,
				"ExecutionCount":   errors.ErrState,
			},
		},
		"missing owner": {
			model: &Will{
				Metadata:         &weave.Metadata{Schema: 1},
				LastActivity:     1000,
				InactivityPeriod: 100,
			},
			wantErrs: map[string]*errors.Error{
				"Owner": errors.ErrEmpty,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.model.Validate()
			for field, wantErr := range tc.wantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestWillExecutableAt(t *testing.T) {
	w := Will{
		LastActivity:     weave.AsUnixTime(time.Unix(1000, 0)),
		InactivityPeriod: weave.AsUnixDuration(time.Minute),
	}
	assert.Equal(t, weave.UnixTime(1060), w.ExecutableAt())
}

func TestBeneficiaryValidate(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	addr := weavetest.NewCondition().Address()

	cases := map[string]struct {
		model    *Beneficiary
		wantErrs map[string]*errors.Error
	}{
		"valid beneficiary": {
			model: &Beneficiary{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner,
				Address:  addr,
				Share:    1,
				Position: 3,
			},
			wantErrs: map[string]*errors.Error{
				"Metadata": nil,
				"Owner":    nil,
				"Address":  nil,
				"Share":    nil,
				"Position": nil,
			},
		},
		"invalid share and position": {
			model: &Beneficiary{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner,
				Address:  addr,
				Share:    0,
				Position: -1,
			},
			wantErrs: map[string]*errors.Error{
				"Share":    ErrInvalidShare,
				"Position": errors.ErrState,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.model.Validate()
			for field, wantErr := range tc.wantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestOwnerBeneficiaries(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "will")

	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()
	b := NewBeneficiaryBucket()

	addrs := []weave.Address{
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
	}
	// Store in reverse order to make sure the result is ordered by position.
	for i := len(addrs) - 1; i >= 0; i-- {
		benef := Beneficiary{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    alice,
			Address:  addrs[i],
			Share:    10,
			Position: int32(i),
		}
		if _, err := b.Put(db, BeneficiaryKey(alice, addrs[i]), &benef); err != nil {
			t.Fatalf("cannot store beneficiary %d: %s", i, err)
		}
	}
	other := Beneficiary{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    bob,
		Address:  addrs[0],
		Share:    100,
	}
	if _, err := b.Put(db, BeneficiaryKey(bob, addrs[0]), &other); err != nil {
		t.Fatalf("cannot store beneficiary: %s", err)
	}

	got, err := ownerBeneficiaries(db, b, alice)
	if err != nil {
		t.Fatalf("cannot list beneficiaries: %s", err)
	}
	if len(got) != len(addrs) {
		t.Fatalf("want %d beneficiaries, got %d", len(addrs), len(got))
	}
	for i, benef := range got {
		assert.Equal(t, addrs[i], benef.Address)
		assert.Equal(t, int32(i), benef.Position)
	}

	got, err = ownerBeneficiaries(db, b, weavetest.NewCondition().Address())
	assert.Nil(t, err)
	assert.Equal(t, 0, len(got))
}

func TestCustodyAddress(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	assert.Equal(t, CustodyAddress(alice), CustodyAddress(alice))
	if CustodyAddress(alice).Equals(CustodyAddress(bob)) {
		t.Fatal("custody addresses of different owners must differ")
	}
	if CustodyAddress(alice).Equals(alice) {
		t.Fatal("custody address must differ from the owner address")
	}
	assert.Nil(t, CustodyAddress(alice).Validate())
}
