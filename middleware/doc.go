// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS Middleware

Restrict cross-origin requests to the configured allowlist:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins, mux),
	}

Origins outside the allowlist get no CORS headers; requests without an
Origin header pass through untouched.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Committee Session Gate

RequireCommittee guards committee-only endpoints:

	mux.HandleFunc("GET /committee/candidates",
		middleware.RequireCommittee(cfg.JWTSecret, handler))

It expects an Authorization: Bearer header, verifies the session token,
and fails closed with 401 before the handler runs. The authenticated
member ID is available from the request context under MemberIDKey.
*/
package middleware
