package common

// RequestIDHeaderName is the HTTP header carrying the per-request correlation
// id attached to every backend call.
const RequestIDHeaderName = "X-Request-Id"
