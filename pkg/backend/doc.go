// Package backend is a small client for the hosted backend-as-a-service that
// stores the studio's catalogue, workshops and customer submissions.
//
// It speaks two surfaces: the auth endpoint (/auth/v1/token) used by SignIn
// and the REST endpoint (/rest/v1/{table}) used by Insert and List. SignIn
// retries transient failures with a Backoff (fixed delay by default) and
// gives up with ErrSignInFailed; rejected credentials are not retried.
//
//	c, err := backend.New(cfg, backend.WithLogger(log))
//	if _, err := c.SignIn(ctx, cfg.Email, cfg.Password); err != nil {
//		return err
//	}
//	workshops, err := c.ListWorkshops(ctx, from, to)
package backend
