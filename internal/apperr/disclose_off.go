//go:build !disclose

package apperr

// disclose is fixed at build time; this is the default, end-user build.
const disclose = false
