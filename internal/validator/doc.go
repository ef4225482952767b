// Package validator collects and reports validation issues for formkit.
//
// It defines shared types for representing validation issues (errors,
// warnings, info) raised by a form validation pass or by linting a form
// definition, and a [Reporter] that prints them as colored text or JSON.
//
// # Core Concepts
//
//   - [Severity]: Distinguishes between blocking errors and non-blocking warnings.
//   - [Issue]: Represents a single validation problem with field context.
//   - [Result]: Aggregates multiple issues and provides helper methods.
//
// # Forms
//
// [FromSnapshot] turns the outcome of form.State.Validate into a Result,
// keeping field order stable and masking secret values.
package validator
