// Package digest turns plaintext credentials into stable, fixed-length
// hexadecimal digests.
//
// Two drivers ship with the package: a PBKDF2-SHA256 driver for deployments
// where the strong primitive is trusted, and a deterministic iterated-FNV
// fallback for environments where it is not. The drivers are NOT
// interchangeable: a digest must always be verified by the driver that
// produced it, so every stored credential record carries the DriverName tag
// of the driver used at registration time.
//
// The Registry dispatches digesting to the deployment's default driver and
// verification to whichever driver a record is tagged with. The default is
// resolved once at startup from configuration, which keeps driver selection
// deterministic for a given deployment.
package digest

import (
	"crypto/subtle"
	"fmt"
)

// DriverName identifies a digest driver. The tag is persisted alongside
// each credential record.
type DriverName string

const (
	// DriverPBKDF2 selects the PBKDF2-SHA256 driver (deployment default).
	DriverPBKDF2 DriverName = "pbkdf2"
	// DriverFNV selects the iterated-FNV fallback driver.
	DriverFNV DriverName = "fnv"
)

// Digester is the contract every driver satisfies.
//
// Digest is deterministic: the same input always yields the same output for
// a given driver. The output is lowercase hex of a fixed length, so digests
// from both drivers are indistinguishable in shape and neither ever stores
// the plaintext.
type Digester interface {
	Digest(plaintext string) (string, error)
	Driver() DriverName
}

// Registry maps driver names to digesters and holds the deployment default.
type Registry struct {
	drivers map[DriverName]Digester
	def     DriverName
}

// NewRegistry builds a Registry with both built-in drivers registered and
// def as the deployment default. An unknown default is an error.
func NewRegistry(def DriverName) (*Registry, error) {
	r := &Registry{
		drivers: map[DriverName]Digester{
			DriverPBKDF2: PBKDF2Digester{},
			DriverFNV:    FNVDigester{},
		},
		def: def,
	}
	if _, ok := r.drivers[def]; !ok {
		return nil, fmt.Errorf("unknown digest driver: %q", def)
	}
	return r, nil
}

// Default returns the digester new credential records are created with.
func (r *Registry) Default() Digester {
	return r.drivers[r.def]
}

// Driver returns the digester registered under name.
func (r *Registry) Driver(name DriverName) (Digester, error) {
	d, ok := r.drivers[name]
	if !ok {
		return nil, fmt.Errorf("unknown digest driver: %q", name)
	}
	return d, nil
}

// Verify digests plaintext under the driver a record is tagged with and
// compares the result against the stored digest in constant time.
func (r *Registry) Verify(plaintext string, name DriverName, stored string) (bool, error) {
	d, err := r.Driver(name)
	if err != nil {
		return false, err
	}
	candidate, err := d.Digest(plaintext)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1, nil
}
