//go:build disclose

package apperr

// disclose is fixed at build time; enabled via `go build -tags disclose`.
const disclose = true
