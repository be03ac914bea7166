// Package signer computes the request signature expected by the OpenAPI
// service.
//
// The signature is the lowercase hex MD5 of every query parameter (except
// Signature itself) sorted by key and concatenated as key=value with no
// separator, followed by the application secret. JSON bodies are bound to
// the signature through a _body parameter holding the SHA-1 of the body.
package signer
