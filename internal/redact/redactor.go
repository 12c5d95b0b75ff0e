// internal/redact/redactor.go
package redact

import "strings"

// GenericPlaceholder is the fallback for sensitive strings with no
// recognizable credential shape.
const GenericPlaceholder = "<your-api-key>"

type prefixRule struct {
	prefix      string
	placeholder string
}

// Known credential prefixes, checked in order. The order is load-bearing:
// it must reproduce the placeholders in the published sample files, so
// entries are never reordered or merged even where one shadows another
// (ya29. values always carry two dots and are caught by the token-shape
// check first).
var prefixRules = []prefixRule{
	{"sk-", "<your-api-key>"},
	{"gho_", "<your-github-token>"},
	{"ghu_", "<your-github-token>"},
	{"xai-", "<your-xai-api-key>"},
	{"pplx-", "<your-perplexity-api-key>"},
	{"gsk_", "<your-groq-api-key>"},
	{"csk-", "<your-cerebras-api-key>"},
	{"fw_", "<your-fireworks-api-key>"},
	{"nvapi-", "<your-nvidia-api-key>"},
	{"hf_", "<your-huggingface-token>"},
	{"cpk_", "<your-chutes-api-key>"},
	{"CHK-", "<your-chub-api-key>"},
	{"ns_", "<your-nscale-api-key>"},
	{"LLM|", "<your-meta-api-key>"},
	{"AKIA", "<your-aws-access-key-id>"},
	{"ya29.", "<your-google-oauth-token>"},
	{"tid=", "<your-copilot-token>"},
	{"eyJ", "<your-jwt-token>"},
	{"-----BEGIN", "<your-private-key>"},
}

// Value masks a single scalar under a sensitive key, returning the value
// unchanged when the key is not sensitive or the value is not a string.
// Empty and whitespace-only strings pass through: there is nothing to leak
// and keeping them makes the sample show which settings may stay blank.
func Value(key string, value any) any {
	if !SensitiveKey(key) {
		return value
	}

	s, ok := value.(string)
	if !ok {
		return value
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}

	// Already a placeholder: masking must be idempotent, and the fallback
	// below would otherwise rewrite provider-specific placeholders.
	if strings.HasPrefix(trimmed, "<your-") && strings.HasSuffix(trimmed, ">") {
		return s
	}

	// Embedded JSON documents (service account keys) keep their shape.
	if strings.HasPrefix(trimmed, "{") && strings.Contains(s, "private_key") {
		return JSONCredentials(s)
	}

	// Three-part signed tokens: header.payload.signature.
	if strings.Count(s, ".") >= 2 {
		return "<your-jwt-token>"
	}

	for _, r := range prefixRules {
		if strings.HasPrefix(s, r.prefix) {
			return r.placeholder
		}
	}

	if strings.ToLower(key) == "account_id" {
		return "<your-account-id>"
	}

	return GenericPlaceholder
}
