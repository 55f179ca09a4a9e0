// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net/http"
	"strings"
)

// Scheme is the authorization scheme the polling service accepts.
const Scheme = "Bearer"

// NormalizeToken strips surrounding whitespace from an access token.
// Tokens arrive from flags, env files, and copy-paste, so stray spaces
// and newlines are common.
func NormalizeToken(token string) string {
	return strings.TrimSpace(token)
}

// BearerHeader builds an Authorization header carrying the normalized token.
func BearerHeader(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", Scheme+" "+NormalizeToken(token))
	return h
}

// RedactToken masks a credential for logging. The first four characters are
// kept so operators can tell tokens apart; the mask is fixed-width so the
// credential's length is not leaked either.
func RedactToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + "****"
}

// RedactAuthorization masks the credential part of an Authorization header
// value, preserving the scheme.
func RedactAuthorization(value string) string {
	scheme, credential, found := strings.Cut(value, " ")
	if !found {
		return RedactToken(value)
	}
	return scheme + " " + RedactToken(credential)
}
