package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// datastarRequestHeader is set by the Datastar client on every backend action.
const datastarRequestHeader = "Datastar-Request"

// Signals creates a binder that reads Datastar signals into v.
//
// GET requests carry signals in the "datastar" query parameter, every other
// method in the JSON body. Requests that are not Datastar actions return
// ErrBinderNotApplicable so the next binder in the chain can run. Decoded
// strings are sanitized the same way as JSON().
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Header.Get(datastarRequestHeader) != "true" && !r.URL.Query().Has("datastar") {
			return ErrBinderNotApplicable
		}

		if r.Method != http.MethodGet && r.Body != nil {
			r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxJSONSize)
		}

		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseSignals, err)
		}

		sanitizeStruct(v)
		return nil
	}
}
