// Package errors provides the structured error type returned by confkit.
//
// Every failure of a load call is an *AppError carrying a machine-readable
// code, a human-readable message, details such as the offending file path,
// and the underlying cause. Callers branch on the code with HasCode or
// inspect the cause with the standard errors.As.
package errors
