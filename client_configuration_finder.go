// Copyright (c) 2023-2025 Meridian Data, Inc. All rights reserved.

package gomeridian

import (
	"errors"
	"os"
	"path"
)

const (
	defaultConfigName  = "meridian_client_config.toml"
	clientConfEnvName  = "MERIDIAN_CLIENT_CONFIG_FILE"
	meridianHomeEnv    = "MERIDIAN_HOME"
	meridianHomeSubdir = "meridian"
)

func getClientConfig(filePathFromClientInput string) (*ClientConfig, error) {
	configPredefinedDirs, err := clientConfigPredefinedDirs()
	if err != nil {
		return nil, err
	}
	filePath, err := findClientConfigFilePath(filePathFromClientInput, configPredefinedDirs)
	if err != nil {
		return nil, err
	}
	if filePath == "" { // we did not find a config file
		return nil, nil
	}
	return parseClientConfiguration(filePath)
}

func findClientConfigFilePath(filePathFromClientInput string, configPredefinedDirs []string) (string, error) {
	if filePathFromClientInput != "" {
		return filePathFromClientInput, nil
	}
	envConfigFilePath := os.Getenv(clientConfEnvName)
	if envConfigFilePath != "" {
		return envConfigFilePath, nil
	}
	return searchForConfigFile(configPredefinedDirs)
}

func searchForConfigFile(directories []string) (string, error) {
	for _, dir := range directories {
		filePath := path.Join(dir, defaultConfigName)
		exists, err := existsFile(filePath)
		if err != nil {
			return "", err
		}
		if exists {
			return filePath, nil
		}
	}
	return "", nil
}

func existsFile(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func clientConfigPredefinedDirs() ([]string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	meridianHome, err := meridianHomeDir()
	if err != nil {
		return nil, err
	}
	return []string{".", meridianHome, homeDir, os.TempDir()}, nil
}

// meridianHomeDir resolves MERIDIAN_HOME, defaulting to the meridian
// subdirectory of the user home directory.
func meridianHomeDir() (string, error) {
	dir := os.Getenv(meridianHomeEnv)
	if dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return path.Join(homeDir, meridianHomeSubdir), nil
}
