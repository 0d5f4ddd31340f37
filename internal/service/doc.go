// Package service contains the application use cases: account registration
// and login, user management and the mock weather forecast. Services
// orchestrate the user directory (defined in internal/store), the
// credential hasher and the token service.
//
// Every error a service returns is either a classified *domain.Error or an
// unexpected failure. Services never choose HTTP status codes; the API
// layer normalizes errors at a single boundary.
//
// Services receive their dependencies through constructor injection and
// depend only on the store interfaces, never on a concrete implementation.
package service
