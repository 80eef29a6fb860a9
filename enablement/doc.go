// Package enablement holds one boolean constant per catalogue service,
// generated from a build profile. Forwarders in package cryptosvc branch on
// these constants, so the compiler drops the implementation of every service
// set to false.
//
// Regenerate after editing the profile:
//
//	go generate ./enablement
package enablement

//go:generate go run ../cmd/cryptogen --profile ../profiles/default.yaml --out flags_gen.go
