// Package api contains the client-side adapter for the plant backend REST API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering every
//     backend endpoint the UI consumes: plants, growth records, care tasks and
//     the facts/suppliers catalogs.
//  2. A concrete HTTP implementation (see HTTPClient) that speaks JSON over
//     net/http against an injected base URL, attaches a per-request
//     correlation id, and maps failures to matchable errors. There is no
//     retry, no caching and no authentication; every call is fire-and-await.
//
// # Ordering contract
//
// ListGrowthRecords returns records newest-first; the detail view reads index
// 0 as the current height. This ordering is part of the backend interface,
// not an accident of storage.
//
// # Error Handling
//
// Transport failures wrap common.ErrUnavailable. Non-2xx responses are
// returned as *HTTPError; a 404 additionally matches common.ErrNotFound via
// errors.Is. Callers discriminate with errors.Is / errors.As only.
//
// See Also
//
//   - Interface: Client
//   - HTTP impl: HTTPClient
//   - Errors:    HTTPError, common.ErrUnavailable, common.ErrNotFound
package api
