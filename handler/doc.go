// Package handler provides type-safe HTTP request handling.
//
// Handlers are generic functions that receive a bound request value and
// return a Response:
//
//	type ContactRequest struct {
//		Name    string `json:"name"`
//		Email   string `json:"email"`
//		Message string `json:"message"`
//	}
//
//	func contact(ctx handler.Context, req ContactRequest) handler.Response {
//		if err := validator.Validate(req.Fields(), rules); err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.EmptyWithStatus(http.StatusAccepted)
//	}
//
//	r.Post("/contact", handler.Wrap(contact,
//		handler.WithBinders[handler.Context, ContactRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, ContactRequest](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
//	handler.JSON(data)                          // 200 {"data": ...}
//	handler.JSON(data, handler.WithJSONStatus(201))
//	handler.JSONError(err)                      // {"error": {"code", "message", "details"}}
//	handler.Empty()                             // 204
//	handler.EmptyWithStatus(http.StatusAccepted)
//	handler.Signals(map[string]any{"valid": true}) // DataStar signal patch
//
// JSONError maps validator.ValidationErrors to 422 with details keyed by
// field in the order the fields failed, HTTPError values to their status
// code, binder errors to 400/413/415 and everything else to a 500 that does
// not expose the error text.
//
// # DataStar
//
// IsDataStar detects requests sent by the DataStar client. Context.SSE returns
// a lazily created event generator for those requests, and the error handler
// returned by NewErrorHandler answers them with an "errors"/"formError" signal
// patch rather than a JSON body.
package handler
