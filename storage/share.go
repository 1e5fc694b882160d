package storage

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
)

// ShareParam is the query parameter a shared tool configuration travels in
const ShareParam = "preset"

// EncodeShare packs a tool configuration into a standard base64 token.
// The token may contain + / and =, so ShareURL query-escapes it.
func EncodeShare(state any) (string, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("encode share state: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeShare unpacks a token produced by EncodeShare into v
func DecodeShare(token string, v any) error {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return fmt.Errorf("decode share token: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode share state: %w", err)
	}
	return nil
}

// ShareURL sets the preset parameter on base, keeping its other parameters
func ShareURL(base string, state any) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	token, err := EncodeShare(state)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set(ShareParam, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
