// Package web serves the browser frontend.
//
// # Overview
//
// The package owns an Echo server, a buffered HTML template renderer, and
// the handlers that bridge HTTP requests to the view models in
// internal/client/views. Long-lived view state (the plant collection, the
// facts catalog, the supplier directory) lives on the Server; per-plant
// pages build request-scoped view models on demand.
//
// # Error Handling
//
// Handlers never surface transport errors as HTTP 5xx. Fetch failures
// degrade into error banners rendered by the page, and mutation failures
// redirect back to the originating page with the message in the query
// string. Only template execution failures bubble up to Echo.
package web
