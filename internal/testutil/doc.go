// Package testutil provides test doubles shared across packages.
package testutil
