// Package storefront is the public HTTP API of the shop.
//
// Routes (mount with r.Mount("/api", svc.Handle())):
//
//	POST /forms/{form}/validate   validate a submission against a named rule-set
//	POST /forms/{form}/live       DataStar live validation, patches the "errors" signal
//	POST /contact                 contact form, emailed to the studio
//	POST /quotes                  custom piece quote, emailed to customer and studio
//	POST /workshops/{id}/enroll   reserve seats in a workshop
//	GET  /workshops/calendar      month grid of workshops (?year=&month=)
//
// Write endpoints are rate limited per client IP when a limiter is
// configured. Accepted submissions answer 202 with a reference; emails are
// sent in the background and Wait blocks until they are out.
package storefront
