package constants

// Context keys
const (
	ContextKeyIdentity  = "identity"
	ContextKeyRequestID = "request_id"
)

// Headers
const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
	HeaderTotalCount    = "X-Total-Count"
	BearerScheme        = "bearer"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Postulation status vocabulary. The status column is free text; only the
// default and the accepted prefix carry meaning.
const (
	DefaultPostulationStatus = "pendiente"
	AcceptedStatusPrefix     = "acept"
)
