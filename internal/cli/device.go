package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// resolveDeviceID picks the device identifier: flag, then env, then a
// uuid generated once and cached under the user config dir. The id is
// an opaque correlation key, not an identity.
func resolveDeviceID(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv("BREEDSNAP_DEVICE_ID"); env != "" {
		return env, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	path := filepath.Join(configDir, "breedsnap", "device-id")

	if data, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	}

	id := uuid.NewString()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0644); err != nil {
		return "", fmt.Errorf("cache device id: %w", err)
	}
	return id, nil
}
