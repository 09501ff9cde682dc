// Copyright (c) 2023-2025 Meridian Data, Inc. All rights reserved.

package gomeridian

import (
	"errors"
	"fmt"
	"strings"

	toml "github.com/BurntSushi/toml"
)

// log levels for easy logging
const (
	levelOff   string = "OFF"   // log level for logging switched off
	levelError string = "ERROR" // error log level
	levelWarn  string = "WARN"  // warn log level
	levelInfo  string = "INFO"  // info log level
	levelDebug string = "DEBUG" // debug log level
	levelTrace string = "TRACE" // trace log level
)

// ClientConfig config root
type ClientConfig struct {
	Common *ClientConfigCommonProps `toml:"common"`
}

// ClientConfigCommonProps properties from "common" section
type ClientConfigCommonProps struct {
	LogLevel *string `toml:"log_level"`
	LogPath  *string `toml:"log_path"`
}

func parseClientConfiguration(filePath string) (*ClientConfig, error) {
	if filePath == "" {
		return nil, nil
	}
	var clientConfig ClientConfig
	if _, err := toml.DecodeFile(filePath, &clientConfig); err != nil {
		return nil, parsingClientConfigError(err)
	}
	if err := validateClientConfiguration(&clientConfig); err != nil {
		return nil, parsingClientConfigError(err)
	}
	return &clientConfig, nil
}

func parsingClientConfigError(err error) error {
	return fmt.Errorf("parsing client config failed: %w", err)
}

func validateClientConfiguration(clientConfig *ClientConfig) error {
	if clientConfig == nil {
		return errors.New("client config not found")
	}
	if clientConfig.Common == nil {
		return errors.New("common section in client config not found")
	}
	return validateLogLevel(clientConfig)
}

func validateLogLevel(clientConfig *ClientConfig) error {
	var logLevel = clientConfig.Common.LogLevel
	if logLevel != nil && *logLevel != "" {
		if _, err := toLogLevel(*logLevel); err != nil {
			return err
		}
	}
	return nil
}

func toLogLevel(logLevelString string) (string, error) {
	var logLevel = strings.ToUpper(logLevelString)
	switch logLevel {
	case levelOff, levelError, levelWarn, levelInfo, levelDebug, levelTrace:
		return logLevel, nil
	default:
		return "", errors.New("unknown log level: " + logLevelString)
	}
}
