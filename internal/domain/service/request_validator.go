package service

// RequestValidator performs structural validation of inbound request payloads
// against their declared constraints. Implementations return a
// ValidationFailed application error carrying all violated constraints, or
// nil when the payload is well-formed.
type RequestValidator interface {
	Validate(request any) error
}
