// Package email sends the studio's transactional messages.
//
// EmailSender is the delivery abstraction. NewPostmarkClient delivers through
// Postmark; DevSender writes an .html and a .json file per message so local
// runs never reach real inboxes. NewSender picks one based on Config.
//
// Every sender validates SendEmailParams with the same rule engine the
// storefront forms use, so a malformed recipient fails with
// ErrInvalidParams and the field-level validator.ValidationErrors joined in.
//
// Mailer renders the templ components in the templates subpackage (contact
// notification, quote received, workshop enrollment, order confirmation) and
// sends them.
package email
