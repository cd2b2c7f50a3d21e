package secretscan

import (
	"regexp"
	"strings"
)

// secretKeywords gates the heuristic: only properties whose lower-cased name
// contains one of these fragments are ever inspected.
var secretKeywords = []string{
	"password", "passwd", "pwd", "secret", "token",
	"apikey", "api_key", "private_key", "privatekey",
	"client_secret", "clientsecret",
}

// Secret-shape patterns, tried in order. All are anchored whole-string
// matches except awsAccessKeyIDRegex, which is a substring search: real AWS
// access key IDs routinely appear embedded in ARNs and composite values,
// while the other shapes are whole values by nature.
var (
	vendorPrefixedKeyRegex = regexp.MustCompile(`^sk-[A-Za-z0-9]{20,}$`)
	highEntropyTokenRegex  = regexp.MustCompile(`^[A-Za-z0-9]{32,}$`)
	bearerTokenRegex       = regexp.MustCompile(`(?i)^bearer\s+\S+`)
	rawHexKeyRegex         = regexp.MustCompile(`^[a-f0-9]{64}$`)
	googleAPIKeyRegex      = regexp.MustCompile(`^AIza[0-9A-Za-z_-]{35}$`)
	awsAccessKeyIDRegex    = regexp.MustCompile(`AKIA[0-9A-Z]{16}`)
)

// Secure-reference prefixes, compared case-insensitively. The "${" prefix
// deliberately has no closing-brace check: the allow-list stays permissive,
// unlike FormatEnvPlaceholder which requires the full wrapper.
const (
	keyVaultPrefix          = "@microsoft.keyvault("
	secretsManagerARNPrefix = "arn:aws:secretsmanager:"
	envPlaceholderPrefix    = "${"
)

// IsLikelySecret reports whether value looks like plain-text secret material
// for a property with the given name. The property name is the gate: values
// of properties outside the keyword set are never inspected, regardless of
// shape. A value recognized as a secure reference is never flagged even when
// the name matches.
func IsLikelySecret(value, propertyName string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	name := strings.ToLower(propertyName)
	keyword := false
	for _, kw := range secretKeywords {
		if strings.Contains(name, kw) {
			keyword = true
			break
		}
	}
	if !keyword {
		return false
	}
	if IsSecureReference(value) {
		return false
	}
	return MatchesSecretShape(value)
}

// MatchesSecretShape reports whether value matches any known secret shape:
// vendor-prefixed keys (sk-...), generic high-entropy tokens, Bearer
// authorization headers, raw 64-char hex key material, and cloud-vendor API
// key shapes.
func MatchesSecretShape(value string) bool {
	return vendorPrefixedKeyRegex.MatchString(value) ||
		highEntropyTokenRegex.MatchString(value) ||
		bearerTokenRegex.MatchString(value) ||
		rawHexKeyRegex.MatchString(value) ||
		googleAPIKeyRegex.MatchString(value) ||
		awsAccessKeyIDRegex.MatchString(value)
}

// IsSecureReference reports whether value is a pointer to externally-stored
// secret material rather than the secret itself: an Azure Key Vault
// reference, an AWS Secrets Manager ARN, or an environment-variable
// placeholder opener. Prefix comparison is case-insensitive.
func IsSecureReference(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return strings.HasPrefix(v, keyVaultPrefix) ||
		strings.HasPrefix(v, secretsManagerARNPrefix) ||
		strings.HasPrefix(v, envPlaceholderPrefix)
}
