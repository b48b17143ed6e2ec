// Package crypto holds the small hashing helpers crashkit needs.
package crypto
