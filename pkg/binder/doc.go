// Package binder decodes HTTP request bodies into handler request values.
//
// Binders share the signature func(r *http.Request, v any) error and are
// plugged into handler.Wrap through handler.WithBinders. Two binders are
// provided:
//
//   - JSON decodes an application/json body in strict mode (unknown fields
//     and trailing data are rejected, bodies are capped at DefaultMaxJSONSize).
//   - Signals reads the signal store sent by Datastar actions and returns
//     ErrBinderNotApplicable for any other request, so it can be chained in
//     front of JSON.
//
// Both binders sanitize every decoded string with sanitizer.Sanitize, including
// strings nested in slices, maps and interface values. Tag a struct field with
// `sanitize:"-"` to keep it verbatim (passwords, for example).
//
//	type EnrollRequest struct {
//		Name     string `json:"name"`
//		Email    string `json:"email"`
//		Password string `json:"password" sanitize:"-"`
//	}
//
// Errors wrap the package sentinels (ErrUnsupportedMediaType,
// ErrFailedToParseJSON, ErrBodyTooLarge, ...) and are mapped to HTTP status
// codes by the handler package.
package binder
