// Package cache holds the per-year holiday sets built from the source page.
package cache
