package ucrypt

import (
	"fmt"
)

func (r ErrUnsupportedVersion) Error() string {
	msg := fmt.Sprintf("%s: unsupported Lineage2Ver%d encryption", r.Caller, r.Version)
	if r.MissingKey {
		msg += ": no RSA key registered"
	}
	return msg
}
