// Package device derives a stable identifier for the machine invoking the
// CLI, used as a keeper's default identity (store.Share.KeeperID) when the
// caller does not name one explicitly. Adapted from the teacher's
// device.go, trimmed to the cross-platform identifiers available without
// shelling out to per-OS tools (wmic, ioreg, dmidecode): hostname, $USER,
// whatever machine-id file the OS exposes, and the OS name.
package device

import (
	"crypto/sha256"
	"fmt"
	"os"
	"runtime"
	"strings"
)

var machineIDPaths = []string{"/etc/machine-id", "/var/lib/dbus/machine-id"}

// Fingerprint returns a stable, opaque hex identifier for the current
// machine and user. It never fails outright — with no identifiers
// available it still hashes the OS name, so every machine gets a
// deterministic, if less unique, fingerprint.
func Fingerprint() string {
	var parts []string

	if host, err := os.Hostname(); err == nil && host != "" {
		parts = append(parts, "host:"+host)
	}
	if user := os.Getenv("USER"); user != "" {
		parts = append(parts, "user:"+user)
	}
	for _, p := range machineIDPaths {
		if data, err := os.ReadFile(p); err == nil {
			id := strings.TrimSpace(string(data))
			if id != "" {
				parts = append(parts, "machine-id:"+id)
				break
			}
		}
	}
	parts = append(parts, "os:"+runtime.GOOS)

	hash := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("%x", hash)[:32]
}
