package contextkeys

// Typed context keys shared between middleware and the outbound HTTP clients.

type RequestId struct{}

type TransactionContextKey struct{}

type HttpClientStartsAt struct{}

type HttpClientRequestBody struct{}
