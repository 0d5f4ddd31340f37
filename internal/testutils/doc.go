// Package testutils provides shared fixtures for tests: a log recorder,
// a token configuration and a known-good registration payload.
//
// It must only be imported from _test.go files.
package testutils
