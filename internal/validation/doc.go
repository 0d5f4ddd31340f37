// Package validation checks incoming request payloads before any business
// logic runs. Each payload type has a table of field rules; every rule is
// evaluated so a single response can list every violation.
package validation
