// Package utils provides decorators shared by all applications: logging,
// panic recovery, savepoints and action tagging.
package utils
