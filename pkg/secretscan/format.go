package secretscan

import "strings"

// Format identifies one secure way of externalizing a secret. A Format check
// is exclusive: a value that matches a different secure format than the one
// requested does not match.
type Format int

const (
	// FormatKeyVault expects an Azure Key Vault reference
	// ("@Microsoft.KeyVault(...").
	FormatKeyVault Format = iota

	// FormatAWSSecretsManager expects an AWS Secrets Manager ARN
	// ("arn:aws:secretsmanager:...").
	FormatAWSSecretsManager

	// FormatEnvPlaceholder expects a complete "${...}" placeholder. Unlike
	// IsSecureReference, the closing brace is required here.
	FormatEnvPlaceholder

	// FormatExternalized is the catch-all: the value merely must not look
	// like secret material itself.
	FormatExternalized
)

func (f Format) String() string {
	switch f {
	case FormatKeyVault:
		return "key_vault"
	case FormatAWSSecretsManager:
		return "aws_secrets_manager"
	case FormatEnvPlaceholder:
		return "env_placeholder"
	case FormatExternalized:
		return "externalized"
	default:
		return "unknown"
	}
}

// Description returns the human-readable form used in rule messages.
func (f Format) Description() string {
	switch f {
	case FormatKeyVault:
		return "an Azure Key Vault reference"
	case FormatAWSSecretsManager:
		return "an AWS Secrets Manager ARN"
	case FormatEnvPlaceholder:
		return "a ${...} environment variable placeholder"
	case FormatExternalized:
		return "an externalized secret reference"
	default:
		return "an unknown secret format"
	}
}

// Matches reports whether value conforms to this one format.
func (f Format) Matches(value string) bool {
	v := strings.TrimSpace(value)
	switch f {
	case FormatKeyVault:
		return strings.HasPrefix(strings.ToLower(v), keyVaultPrefix)
	case FormatAWSSecretsManager:
		return strings.HasPrefix(strings.ToLower(v), secretsManagerARNPrefix)
	case FormatEnvPlaceholder:
		return strings.HasPrefix(v, envPlaceholderPrefix) && strings.HasSuffix(v, "}")
	case FormatExternalized:
		return !MatchesSecretShape(v)
	default:
		return false
	}
}
