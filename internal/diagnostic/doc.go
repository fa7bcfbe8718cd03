// Package diagnostic provides structured warnings and errors for the driver
// generator.
//
// Every generation failure is a Diagnostic naming the offending declaration
// and, where it applies, the field. Diagnostic implements error so callers
// can recover the code with errors.As.
package diagnostic
