// Copyright © 2018 One Concern

package opencloud

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/rit/pkg/opencloud/status"
)

const maxErrorBody = 64 * 1024

// Error is an error response returned by the Open Cloud API.
//
// It is always wrapped by one of the sentinel errors of the status package.
type Error struct {
	StatusCode    int
	Code          string
	Message       string
	DatastoreCode string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", e.StatusCode)
	if e.Code != "" {
		b.WriteString(" " + e.Code)
	}
	if e.DatastoreCode != "" {
		b.WriteString(" (" + e.DatastoreCode + ")")
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	return b.String()
}

type errorBody struct {
	Error        string `json:"error"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	ErrorDetails []struct {
		ErrorDetailType    string `json:"errorDetailType"`
		DatastoreErrorCode string `json:"datastoreErrorCode"`
	} `json:"errorDetails"`
}

func decodeError(resp *http.Response) *Error {
	e := &Error{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		e.Message = http.StatusText(resp.StatusCode)
		return e
	}
	var body errorBody
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &body); err != nil {
		e.Message = strings.TrimSpace(string(raw))
		return e
	}
	e.Code = body.Error
	if e.Code == "" {
		e.Code = body.Code
	}
	e.Message = body.Message
	for _, detail := range body.ErrorDetails {
		if detail.DatastoreErrorCode != "" {
			e.DatastoreCode = detail.DatastoreErrorCode
			break
		}
	}
	return e
}

// toSentinelError qualifies an error response with the sentinel errors defined by the status package
func toSentinelError(resp *http.Response) error {
	apiErr := decodeError(resp)
	switch code := resp.StatusCode; {
	case code == http.StatusBadRequest:
		return status.ErrBadRequest.Wrap(apiErr)
	case code == http.StatusUnauthorized:
		return status.ErrUnauthorized.Wrap(apiErr)
	case code == http.StatusForbidden:
		return status.ErrForbidden.Wrap(apiErr)
	case code == http.StatusNotFound:
		return status.ErrNotFound.Wrap(apiErr)
	case code == http.StatusConflict:
		return status.ErrConflict.Wrap(apiErr)
	case code == http.StatusPreconditionFailed:
		return status.ErrPreconditionFailed.Wrap(apiErr)
	case code == http.StatusTooManyRequests:
		return status.ErrTooManyRequests.Wrap(apiErr)
	case code >= 500:
		return status.ErrServer.Wrap(apiErr)
	default:
		return status.ErrCloudAPI.Wrap(apiErr)
	}
}
