// Package errors provides structured error handling for warband-api.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("warband not found")
//	err := errors.InvalidArgumentf("invalid warband code: %s", code)
//
// Adding metadata:
//
//	err := errors.ResourceExhausted("weapon slots full").
//	    WithMeta("cap", maxWeapons).
//	    WithMeta("attribute", "fixed")
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to load warband")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("factionID", input.FactionID, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Rules layer:
//   - Slot cap violations are ResourceExhausted with metadata naming the cap
//     and its governing attribute
//   - Faction mismatches and missing units on replace are FailedPrecondition,
//     indicating a caller bug rather than a user-recoverable state
//
// Codec layer:
//   - Any malformed code (bad base64, bad JSON, missing keys, unknown schema
//     version) is a single uniform InvalidArgument so callers can render one
//     "invalid code" message
package errors
