// Package http implements the coordinator's message endpoint over HTTP.
//
// UI contexts use the /api/wallet, /api/accounts, /api/approvals and
// /api/permissions routes. Relay contexts use /api/relay and must name the
// external origin they act for in the X-Origin header. Tracing, access
// logging and panic recovery are handled here before requests reach the
// service layer.
package http
