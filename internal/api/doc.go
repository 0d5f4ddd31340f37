// Package api contains the HTTP handlers of the FluentFox API. Handlers
// decode requests, call the services and write the uniform response
// envelope; every failure goes through shared.RespondWithAPIError.
package api
