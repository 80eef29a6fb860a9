// Package services declares the fixed catalogue of crypto services exposed by
// the facade. The order of the catalogue is the layout of the service table and of
// the generated enablement constants; appending, removing or reordering
// entries changes the table shape and requires a new table version.
package services

import "fmt"

// Name is the stable identifier of a service. It doubles as the Go
// identifier of the forwarder, the table field and the enablement constant.
type Name string

func (n Name) String() string { return string(n) }

// Family groups related services so a build profile can toggle them together.
type Family string

const (
	FamilyHash   Family = "hash"
	FamilyHMAC   Family = "hmac"
	FamilyCipher Family = "cipher"
	FamilyKDF    Family = "kdf"
	FamilyRandom Family = "random"
	FamilyECC    Family = "ecc"
	FamilyRSA    Family = "rsa"
	FamilyPQC    Family = "pqc"
	FamilyX509   Family = "x509"
	FamilyOTP    Family = "otp"
	FamilyTLS    Family = "tls"
)

var families = []Family{
	FamilyHash, FamilyHMAC, FamilyCipher, FamilyKDF, FamilyRandom, FamilyECC,
	FamilyRSA, FamilyPQC, FamilyX509, FamilyOTP, FamilyTLS,
}

// Catalogue returns every service the facade knows, in catalogue order. The
// result is a copy.
func Catalogue() []Descriptor {
	return append([]Descriptor(nil), catalogue...)
}

// Families returns every family in catalogue order.
func Families() []Family {
	return append([]Family(nil), families...)
}

// Descriptor is the static metadata of one service.
type Descriptor struct {
	Name   Name
	Family Family
	// Signature is the Go signature shared by the forwarder and the
	// implementation.
	Signature string
	// Sentinel describes what the forwarder returns when the service is
	// compiled out.
	Sentinel string
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s %s", d.Name, d.Signature)
}

// Lookup returns the descriptor registered under name.
func Lookup(name Name) (Descriptor, bool) {
	i, ok := index[name]
	if !ok {
		return Descriptor{}, false
	}
	return catalogue[i], true
}

// ByFamily returns the descriptors of one family in catalogue order.
func ByFamily(f Family) []Descriptor {
	var out []Descriptor
	for _, d := range catalogue {
		if d.Family == f {
			out = append(out, d)
		}
	}
	return out
}

// Names returns every service name in catalogue order.
func Names() []Name {
	out := make([]Name, len(catalogue))
	for i, d := range catalogue {
		out[i] = d.Name
	}
	return out
}

// IsFamily reports whether f is a known family.
func IsFamily(f Family) bool {
	for _, known := range families {
		if known == f {
			return true
		}
	}
	return false
}

var index = func() map[Name]int {
	m := make(map[Name]int, len(catalogue))
	for i, d := range catalogue {
		if _, dup := m[d.Name]; dup {
			panic("services: duplicate service name " + string(d.Name))
		}
		m[d.Name] = i
	}
	return m
}()
