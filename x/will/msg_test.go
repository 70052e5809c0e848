package will

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestMsgValidate(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	benef := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msg      weave.Msg
		wantErrs map[string]*errors.Error
	}{
		"valid create message": {
			msg: &CreateMsg{
				Metadata:         &weave.Metadata{Schema: 1},
				Owner:            owner,
				DocumentRef:      "sha256:00",
				InactivityPeriod: 3600,
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":         nil,
				"Owner":            nil,
				"InactivityPeriod": nil,
			},
		},
		"create message owner is optional": {
			msg: &CreateMsg{
				Metadata:         &weave.Metadata{Schema: 1},
				InactivityPeriod: 1,
			},
			wantErrs: map[string]*errors.Error{
				"Owner": nil,
			},
		},
		"create message with invalid fields": {
			msg: &CreateMsg{
				Owner:            weave.Address("short"),
				InactivityPeriod: -5,
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":         errors.ErrMetadata,
				"Owner":            errors.ErrInput,
				"InactivityPeriod": ErrInvalidPeriod,
			},
		},
		"valid add beneficiary message": {
			msg: &AddBeneficiaryMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Beneficiary: benef,
				Share:       100,
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":    nil,
				"Owner":       nil,
				"Beneficiary": nil,
				"Share":       nil,
			},
		},
		"add beneficiary message requires a beneficiary and a share": {
			msg: &AddBeneficiaryMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Share:    0,
			},
			wantErrs: map[string]*errors.Error{
				"Beneficiary": errors.ErrEmpty,
				"Share":       ErrInvalidShare,
			},
		},
		"share cannot exceed one hundred": {
			msg: &AddBeneficiaryMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Beneficiary: benef,
				Share:       101,
			},
			wantErrs: map[string]*errors.Error{
				"Share": ErrInvalidShare,
			},
		},
		"inactivity period update requires a positive period": {
			msg: &UpdateInactivityPeriodMsg{
				Metadata:         &weave.Metadata{Schema: 1},
				InactivityPeriod: 0,
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":         nil,
				"InactivityPeriod": ErrInvalidPeriod,
			},
		},
		"valid record activity message": {
			msg: &RecordActivityMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			wantErrs: map[string]*errors.Error{
				"Metadata": nil,
				"Owner":    nil,
			},
		},
		"document update message requires metadata": {
			msg: &UpdateDocumentMsg{
				DocumentRef: "sha256:00",
			},
			wantErrs: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
				"Owner":    nil,
			},
		},
		"execute message requires an owner": {
			msg: &ExecuteMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			wantErrs: map[string]*errors.Error{
				"Owner": errors.ErrEmpty,
			},
		},
		"valid execute message": {
			msg: &ExecuteMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner,
			},
			wantErrs: map[string]*errors.Error{
				"Metadata": nil,
				"Owner":    nil,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, wantErr := range tc.wantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}
