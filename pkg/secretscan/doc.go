// Package secretscan decides whether configuration values look like
// plain-text secret material. It is a set of stateless pure functions over
// strings; there is no global state and everything is goroutine-safe.
//
// The heuristic is keyword-gated: IsLikelySecret only ever inspects a value
// when the property name contains a secret keyword (password, token, apikey,
// ...), so innocuous fields are never flagged no matter what they hold. An
// explicit allow-list wins over the heuristic: values that are secure
// references — vault pointers, Secrets Manager ARNs, ${...} placeholders —
// are never flagged even under a matching name.
//
// Two asymmetries are intentional and pinned by tests:
//   - the Google-style API key shape must be the whole value while the
//     AWS-style access key ID is a substring search, because real AWS key IDs
//     get embedded in ARNs and composite values;
//   - IsSecureReference accepts a bare "${" prefix while
//     FormatEnvPlaceholder requires the closing "}".
package secretscan
