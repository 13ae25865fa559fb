// Package errors provides the coded error type used across linkfix.
//
// Every failure that crosses a package boundary is a *LinkfixError carrying
// an ErrorCode, so callers and tests can branch on the category
// (translation, stream mismatch, relink, access control) without matching
// message text.
package errors
