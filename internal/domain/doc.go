// Package domain contains the core business entities, request payloads and
// the error taxonomy shared by every layer of the application. It has no
// knowledge of HTTP, storage or configuration.
package domain
