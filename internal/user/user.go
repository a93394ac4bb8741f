// Package user names the recruiter recorded on candidate moves
package user

import (
	"os"
	"os/user"
	"strings"
)

// EnvRecruiter overrides the recorded recruiter name
const EnvRecruiter = "HIREBOARD_RECRUITER"

// Unknown is recorded when no name can be found
const Unknown = "unknown"

// Recruiter returns the name stamped on move history. HIREBOARD_RECRUITER
// wins, then the OS account, then $USER.
func Recruiter() string {
	if name := strings.TrimSpace(os.Getenv(EnvRecruiter)); name != "" {
		return name
	}
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return Unknown
}
