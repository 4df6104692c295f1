// Package error provides the structured error type shared by all iadate packages.
//
// Package: error
// Title: iadate Error Handling
// Description: Implements coded, severity-tagged errors with contextual details
//              and a captured stack trace. Callers classify failures by code
//              instead of matching message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced code table to the time domain, errors.As aware lookups
//
// Usage:
//
//	import mdwerror "github.com/msto63/iadate/foundation/core/error"
//
//	err := mdwerror.New("date string does not match dd-MM-yyyy").
//		WithCode(mdwerror.CodeMalformedInput).
//		WithDetail("input", "31/12/2020").
//		WithOperation("iatime.Parse")
//
//	if mdwerror.HasCode(err, mdwerror.CodeMalformedInput) {
//		// reject the input
//	}
package error
