// internal/tomlenc/comments.go
package tomlenc

import (
	"fmt"
	"strings"
)

// Documentation comments for well-known configuration keys. Looked up by
// lowercased key name when no contextual rule below applies.
var keyComments = map[string]string{
	"default_provider":  "# Default AI provider to use when none is specified",
	"default_model":     "# Default model to use with the default provider",
	"max_tokens":        "# Maximum number of tokens to generate in responses",
	"temperature":       "# Controls randomness in responses (0.0 = deterministic, 1.0 = very random)",
	"endpoint":          "# API endpoint URL for this provider",
	"api_key":           "# API key for authentication - replace with your actual key",
	"models":            "# List of available models (auto-populated by the tool)",
	"models_path":       "# API path to fetch available models",
	"chat_path":         "# API path for chat completions",
	"images_path":       "# API path for image generation",
	"embeddings_path":   "# API path for text embeddings",
	"token_url":         "# URL to refresh authentication tokens",
	"auth_type":         "# Authentication method used by this provider",
	"bucket_name":       "# S3 bucket name for sync storage",
	"region":            "# AWS region for S3 bucket",
	"access_key_id":     "# AWS access key ID - replace with your actual key",
	"secret_access_key": "# AWS secret access key - replace with your actual key",
	"auth_token":        "# Authentication token - replace with your actual token",
	"server_type":       "# MCP server connection type (Stdio or Sse)",
	"command_or_url":    "# Command to start the MCP server or SSE endpoint URL",
	"provider_type":     "# Search provider implementation type",
	"url":               "# Search API endpoint URL",
}

// CommentFor returns the explanatory comment to place above a key, or ""
// when the key has none. The enclosing table name steers context-specific
// comments (provider sections, env vars, headers, aliases, templates).
func CommentFor(key string, value any, parent string) string {
	k := strings.ToLower(key)
	p := strings.ToLower(parent)

	if p == "providers" {
		return fmt.Sprintf("# Configuration for %s AI provider", key)
	}

	if p == "env" {
		if strings.Contains(k, "_api_key") {
			name := strings.ToLower(strings.ReplaceAll(key, "_API_KEY", ""))
			return fmt.Sprintf("# API key environment variable for %s", name)
		}
		if strings.Contains(k, "_token") {
			name := strings.ToLower(strings.ReplaceAll(key, "_TOKEN", ""))
			return fmt.Sprintf("# Token environment variable for %s", name)
		}
	}

	if p == "headers" {
		switch {
		case strings.Contains(k, "api") || strings.Contains(k, "key"):
			return "# API key header - replace with your actual key"
		case strings.Contains(k, "token"):
			return "# Token header - replace with your actual token"
		case strings.Contains(k, "authorization"):
			return "# Authorization header - replace with your actual credentials"
		default:
			return fmt.Sprintf("# HTTP header: %s", key)
		}
	}

	if p == "cached_token" {
		switch k {
		case "token":
			return "# Cached authentication token (auto-refreshed)"
		case "expires_at":
			return "# Token expiration timestamp"
		}
	}

	if p == "aliases" {
		return fmt.Sprintf("# Shortcut alias: use '%s' instead of '%v'", key, value)
	}
	if p == "templates" {
		return fmt.Sprintf("# Prompt template for %s tasks", key)
	}

	return keyComments[k]
}
