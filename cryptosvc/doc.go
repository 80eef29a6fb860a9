// Package cryptosvc is the crypto service facade.
//
// Every service in services.Catalogue has a forwarder here with the same
// signature as its implementation in package primitives. A forwarder checks
// the build-time constant in package enablement: when the service is enabled
// the call is passed through unchanged, otherwise the not-enabled handler
// reports it and the forwarder returns the zero sentinel of its result type
// (nil, false, 0, "" or an *UnsupportedError). Because the constants are
// known at compile time, the implementation of a disabled service is never
// linked into the binary.
//
// The forwarders are also published as a versioned Table for callers that
// resolve services dynamically.
package cryptosvc
