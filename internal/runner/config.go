package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/projectdiscovery/dafsa"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	defaultCfg := filepath.Join(getUserHomeDir(), fmt.Sprintf(".config/dafsagen/config_%v.yaml", version))
	if fileutil.FileExists(defaultCfg) {
		if bin, err := os.ReadFile(defaultCfg); err == nil {
			var cfg dafsa.Config
			if errx := yaml.Unmarshal(bin, &cfg); errx == nil {
				defaultConfig = cfg
				return
			}
			gologger.Error().Msgf("dafsagen yaml configuration syntax error.\n %v\n.", yaml.FormatError(errx, true, true))
			os.Exit(1)
		}
	}
	if err := validateDir(filepath.Join(getUserHomeDir(), ".config/dafsagen")); err != nil {
		gologger.Error().Msgf("dafsagen config dir not found and failed to create got: %v", err)
	}
}

var defaultConfig dafsa.Config

// validateDir checks if dir exists if not creates it
func validateDir(dirPath string) error {
	if fileutil.FolderExists(dirPath) {
		return nil
	}
	return fileutil.CreateFolder(dirPath)
}
