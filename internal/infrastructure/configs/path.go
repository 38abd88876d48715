package configs

import (
	"os"

	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/env"
)

// DetermineConfigPath resolves the config file location: explicit flag value
// first, then the WATCHPARTY_CONFIG env var, then a list of candidates.
// An empty result means "run on defaults and env overrides only".
func DetermineConfigPath(flagValue string) string {
	configPath := flagValue

	if configPath == "" {
		configPath = env.GetString("WATCHPARTY_CONFIG", "")
	}

	if configPath == "" {
		candidates := []string{
			"./config.yaml",
			"./config.yml",
			"/etc/watchparty/config.yaml",
			"/app/config.yaml",
		}

		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	return configPath
}
