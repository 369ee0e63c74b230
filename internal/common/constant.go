package common

// RequestIDHeaderName is the gRPC metadata / HTTP header key carrying the
// request id assigned at the edge.
const RequestIDHeaderName = "x-request-id"

// DecryptionFailedPlaceholder replaces a secret that could not be decoded
// when listing accounts.
const DecryptionFailedPlaceholder = "(decryption failed)"
