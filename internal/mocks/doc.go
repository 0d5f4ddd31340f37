// Package mocks provides hand-written test doubles for the service
// dependencies: the user directory, the password hasher, the token service
// and the auth event recorder.
//
// Each mock exposes XxxFn fields that override a method, and falls back to
// a simple in-memory behavior when the field is nil. TestifyMockUserStore
// is the exception: it is built on testify/mock for call expectations.
//
//	hasher := &mocks.MockPasswordHasher{
//	    VerifyFn: func(password, hashed string) bool {
//	        return password == "Str0ng!Pass"
//	    },
//	}
package mocks
