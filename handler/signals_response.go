package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type signalsResponse struct {
	signals any
}

// Signals creates a DataStar response that patches the client signal store
// with v, which must encode to a JSON object. Rendering it for a request
// that is not a DataStar request fails with ErrNotDataStar.
//
//	return handler.Signals(map[string]any{
//		"errors": errs.First(),
//		"valid":  errs.IsEmpty(),
//	})
func Signals(v any) Response {
	return signalsResponse{signals: v}
}

func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrNotDataStar
	}

	payload, err := json.Marshal(s.signals)
	if err != nil {
		return fmt.Errorf("failed to encode signals: %w", err)
	}

	return NewSSE(w, r).PatchSignals(payload)
}
