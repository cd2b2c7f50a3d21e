// Package conncheck provides connectivity probe rules for the validate
// engine: PostgreSQL, Redis, MongoDB, and S3 bucket reachability checks that
// plug into a validate.Builder through the same Rule interface as the
// built-in rules.
//
// Every probe scopes its client or connection to the single Validate call
// and releases it on every exit path. I/O failures — DNS errors, refused
// connections, timeouts, authentication problems — are caught at the probe
// boundary and converted into ordinary validate.Error values; probes never
// propagate faults. Connection strings are redacted in the reported current
// value since they routinely embed credentials.
//
// Probes block the Validate call for up to their timeout. They are meant for
// startup-time validation, not hot paths, and like every availability check
// they are best-effort: a dependency can go down right after the probe
// passes.
package conncheck
