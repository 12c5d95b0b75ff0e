// internal/redact/jsoncreds.go
package redact

import (
	"encoding/json"
	"strings"
)

// jsonFallback replaces a credential blob that fails to parse as JSON.
const jsonFallback = "<your-service-account-json>"

// Sensitive fields inside a service-account key document. Only these are
// replaced; every other field survives untouched.
var serviceAccountFields = []string{
	"private_key", "private_key_id", "client_email", "client_id",
	"project_id", "auth_uri", "token_uri", "client_x509_cert_url",
}

// JSONCredentials masks the well-known sensitive fields of an embedded
// JSON credential while preserving the overall document shape. A parse
// failure downgrades the whole value to a generic placeholder rather
// than failing the file.
func JSONCredentials(raw string) string {
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return jsonFallback
	}

	for _, field := range serviceAccountFields {
		if _, ok := data[field]; !ok {
			continue
		}
		switch field {
		case "private_key":
			data[field] = "<your-private-key>"
		case "project_id":
			data[field] = "<your-project-id>"
		case "client_email":
			data[field] = "<your-service-account-email>"
		case "client_id":
			data[field] = "<your-client-id>"
		default:
			data[field] = "<your-" + strings.ReplaceAll(field, "_", "-") + ">"
		}
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return jsonFallback
	}
	return string(out)
}
