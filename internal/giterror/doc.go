// Package giterror classifies the errors an export run can fail with, so the
// CLI can map them to exit codes. Typed errors from internal/errors are
// recognised through their Is*Error methods; anything else falls back to
// matching on the message text.
package giterror
