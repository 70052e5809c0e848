package will

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestConfigurationValidate(t *testing.T) {
	cases := map[string]struct {
		conf     Configuration
		wantErrs map[string]*errors.Error
	}{
		"valid configuration": {
			conf: Configuration{
				Metadata:             &weave.Metadata{Schema: 1},
				Owner:                weavetest.NewCondition().Address(),
				Ticker:               "IOV",
				MaxBeneficiaries:     10,
				MaxDocumentRefLength: 256,
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":             nil,
				"Owner":                nil,
				"Ticker":               nil,
				"MaxBeneficiaries":     nil,
				"MaxDocumentRefLength": nil,
			},
		},
		"all fields invalid": {
			conf: Configuration{
				Ticker:               "iov",
				MaxBeneficiaries:     0,
				MaxDocumentRefLength: -1,
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":             errors.ErrMetadata,
				"Owner":                errors.ErrEmpty,
				"Ticker":               errors.ErrCurrency,
				"MaxBeneficiaries":     errors.ErrInput,
				"MaxDocumentRefLength": errors.ErrInput,
			},
		},
		"too many beneficiaries": {
			conf: Configuration{
				Metadata:             &weave.Metadata{Schema: 1},
				Owner:                weavetest.NewCondition().Address(),
				Ticker:               "IOV",
				MaxBeneficiaries:     101,
				MaxDocumentRefLength: 1,
			},
			wantErrs: map[string]*errors.Error{
				"MaxBeneficiaries": errors.ErrInput,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.conf.Validate()
			for field, wantErr := range tc.wantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}
