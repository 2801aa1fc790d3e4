package dialer

import (
	"golang.org/x/net/idna"
)

// PunycodeEncoder is the default HostnameEncoder, converting an
// internationalized hostname to its ASCII form. The core's URL model
// deliberately stays out of this conversion; it's a collaborator's job.
type PunycodeEncoder struct{}

func (PunycodeEncoder) Encode(host string) (string, error) {
	return idna.Lookup.ToASCII(host)
}
