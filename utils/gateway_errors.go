package utils

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"os"
	"strings"
	"syscall"
)

// Remote failure kinds. A RemoteRejection carries the collaborator's own
// message and is shown verbatim; a NetworkFailure gets a generic
// retry-suggesting message instead. Nothing auto-retries either kind.
const (
	FailureKindRemoteRejection = "remote_rejection"
	FailureKindNetworkFailure  = "network_failure"
)

// NetworkFailureMessage is surfaced for connectivity/timeout failures.
const NetworkFailureMessage = "Could not reach the payment service. Please try again."

// RemoteFailure is a classified failure from an external collaborator.
type RemoteFailure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (f *RemoteFailure) Error() string {
	return f.Message
}

func (f *RemoteFailure) Unwrap() error {
	return f.Err
}

// AppError maps the failure onto the response taxonomy. Connectivity
// failures become 503s; everything the collaborator itself rejected
// becomes a 502 carrying its message.
func (f *RemoteFailure) AppError() *AppError {
	if f.Kind == FailureKindNetworkFailure {
		return ServiceUnavailableError(f.Message, f.Err)
	}
	return NewAppError(http.StatusBadGateway, f.Message, f.Err)
}

// ClassifyRemoteError sorts a collaborator failure into the taxonomy.
// Connectivity and timeout errors become NetworkFailure; everything else
// is a RemoteRejection whose message is extracted from the raw payload.
func ClassifyRemoteError(err error, payload []byte) *RemoteFailure {
	if isNetworkError(err) {
		return &RemoteFailure{
			Kind:    FailureKindNetworkFailure,
			Message: NetworkFailureMessage,
			Err:     err,
		}
	}
	return &RemoteFailure{
		Kind:    FailureKindRemoteRejection,
		Message: ExtractRemoteMessage(payload, err),
		Err:     err,
	}
}

// ExtractRemoteMessage pulls the user-facing message out of a structured
// error payload. Priority: error, then detail, then non_field_errors[0],
// then the stringified payload, then the wrapped error text.
func ExtractRemoteMessage(payload []byte, err error) string {
	var body struct {
		Error          string   `json:"error"`
		Detail         string   `json:"detail"`
		NonFieldErrors []string `json:"non_field_errors"`
	}
	if len(payload) > 0 && json.Unmarshal(payload, &body) == nil {
		switch {
		case body.Error != "":
			return body.Error
		case body.Detail != "":
			return body.Detail
		case len(body.NonFieldErrors) > 0 && body.NonFieldErrors[0] != "":
			return body.NonFieldErrors[0]
		}
	}
	if trimmed := strings.TrimSpace(string(payload)); trimmed != "" {
		return trimmed
	}
	if err != nil {
		return err.Error()
	}
	return "Request failed"
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET)
}
