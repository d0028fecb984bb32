// Package forms holds the named rule-sets of every form in the shop.
//
// Default builds a Registry with the storefront forms (login, register,
// contact, checkout, workshop_enrollment, quote_request, return_request) and
// the back-office forms listed in Admin (product, supplier, employee, news).
// The storefront module exposes the registry over HTTP and cmd/seed uses the
// back-office rule-sets to check fixtures before inserting them.
package forms
