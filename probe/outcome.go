package probe

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Outcome describes a successful probe.
type Outcome struct {
	Path       string
	StatusCode int
	Reason     string
}

func (o Outcome) String() string {
	return fmt.Sprintf("Request %s [%d, %s]", o.Path, o.StatusCode, o.Reason)
}

// StatusError is returned for a response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Reason     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP Error %d: %s", e.StatusCode, e.Reason)
}

func newStatusError(resp *resty.Response) *StatusError {
	return &StatusError{StatusCode: resp.StatusCode(), Reason: reasonPhrase(resp)}
}

// reasonPhrase returns the phrase the server sent on its status line,
// falling back to the standard text for the code.
func reasonPhrase(resp *resty.Response) string {
	code := resp.StatusCode()
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(code)))
	if reason == "" {
		reason = http.StatusText(code)
	}
	return reason
}
