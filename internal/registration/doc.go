// Package registration owns the sign-up form state machine and the account
// activation flow.
//
// The package holds no transport or rendering code. A Controller tracks one
// form session: field values, per-field errors, and the submission state. The
// remote user API is reached through the Registrar and Activator interfaces so
// the web layer can plug in an HTTP client and tests can plug in fakes.
package registration
