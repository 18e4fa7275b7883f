// Package web serves the themed site over HTTP: the icon library pages,
// inline icon rendering through the active theme chain, static assets, and
// language negotiation.
package web
