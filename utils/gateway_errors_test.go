package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "dial tcp: i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestExtractRemoteMessagePriority(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    string
	}{
		{
			"error field wins",
			`{"error":"Order already decided","detail":"ignored","non_field_errors":["ignored too"]}`,
			"Order already decided",
		},
		{
			"detail when no error",
			`{"detail":"Not found","non_field_errors":["ignored"]}`,
			"Not found",
		},
		{
			"first non-field error",
			`{"non_field_errors":["Pickup date out of range","second"]}`,
			"Pickup date out of range",
		},
		{
			"stringified fallback",
			`{"code":42}`,
			`{"code":42}`,
		},
		{
			"non-json payload",
			`upstream exploded`,
			"upstream exploded",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractRemoteMessage([]byte(tc.payload), nil))
		})
	}
}

func TestExtractRemoteMessageFallsBackToError(t *testing.T) {
	assert.Equal(t, "boom", ExtractRemoteMessage(nil, errors.New("boom")))
	assert.Equal(t, "Request failed", ExtractRemoteMessage(nil, nil))
}

func TestClassifyRemoteErrorNetwork(t *testing.T) {
	failure := ClassifyRemoteError(timeoutErr{}, nil)
	require.NotNil(t, failure)
	assert.Equal(t, FailureKindNetworkFailure, failure.Kind)
	assert.Equal(t, NetworkFailureMessage, failure.Message)
}

func TestClassifyRemoteErrorRejection(t *testing.T) {
	payload := []byte(`{"error":"Payment capture declined"}`)
	failure := ClassifyRemoteError(errors.New("bad request"), payload)
	require.NotNil(t, failure)
	assert.Equal(t, FailureKindRemoteRejection, failure.Kind)
	assert.Equal(t, "Payment capture declined", failure.Message)
}
