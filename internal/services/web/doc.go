// Package web hosts the browser-facing hoaxify service: the home page, the
// sign-up form, and account activation, rendered server-side and refreshed
// in place with HTMX.
package web
