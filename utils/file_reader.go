package utils

import (
	"fmt"
	"io"
	"os"
)

// GetConfigFile returns the content of the file at filepath. Errors wrap the
// underlying os error, so callers can check for fs.ErrNotExist
func GetConfigFile(filepath string) ([]byte, error) {
	configFile, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer configFile.Close()

	configFileBytes, err := io.ReadAll(configFile)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return configFileBytes, nil
}
