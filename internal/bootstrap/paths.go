package bootstrap

import (
	"path/filepath"
)

// UploadDirName is the directory under the application root that holds
// uploaded assets.
const UploadDirName = "uploads"

// ResolveUploadDir returns the canonical uploads location for the given
// application root. The path is always derived from the root, never from a
// fixed absolute prefix, so a containerized deployment and a host run
// resolve the same logical location. Pure function; existence and
// permissions are checked separately.
func ResolveUploadDir(appRoot string) string {
	return filepath.Join(filepath.Clean(appRoot), UploadDirName)
}
