// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles bearer credentials for calls to the polling service.

This layer never acquires or refreshes tokens; callers obtain an access token
out of band (for example from the login endpoint via curl) and hand it to the
client on every authenticated call.

# Building Headers

Tokens are normalized before use, so whitespace picked up from flags or env
files does not corrupt the header:

	h := auth.BearerHeader(" my-token \n")
	// Authorization: Bearer my-token

# Log Redaction

Credentials must never appear in logs. Redaction keeps a four character
prefix so operators can tell tokens apart:

	auth.RedactToken("abcdefghij")                 // "abcd****"
	auth.RedactAuthorization("Bearer abcdefghij")  // "Bearer abcd****"
*/
package auth
