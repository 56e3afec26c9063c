// Package testutil provides shared helpers for the filter design tests.
package testutil
