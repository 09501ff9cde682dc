// Copyright (c) 2023-2025 Meridian Data, Inc. All rights reserved.

package gomeridian

import (
	"errors"
	"io"
	"os"
	"path"
	"strings"
	"sync"
)

type initTrials struct {
	mu                    sync.Mutex
	everTriedToInitialize bool
	clientConfigFileInput string
	configureCounter      int
}

var easyLoggingInitTrials = initTrials{
	everTriedToInitialize: false,
	clientConfigFileInput: "",
	configureCounter:      0,
}

// setInitTrial and increaseReconfigureCounter run under the initEasyLogging
// lock.
func (i *initTrials) setInitTrial(clientConfigFileInput string) {
	i.everTriedToInitialize = true
	i.clientConfigFileInput = clientConfigFileInput
}

func (i *initTrials) increaseReconfigureCounter() {
	i.configureCounter++
}

func (i *initTrials) reset() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.everTriedToInitialize = false
	i.clientConfigFileInput = ""
	i.configureCounter = 0
}

// ConfigureLogging applies the client configuration file to the package
// logger: log level and log file location. An empty input falls back to the
// configuration file discovery chain. Calling it again without an explicit
// file is a no-op once a configuration has been applied.
func ConfigureLogging(clientConfigFileInput string) error {
	return initEasyLogging(clientConfigFileInput)
}

func initEasyLogging(clientConfigFileInput string) error {
	easyLoggingInitTrials.mu.Lock()
	defer easyLoggingInitTrials.mu.Unlock()
	if !allowedToInitialize(clientConfigFileInput) {
		return nil
	}
	config, err := getClientConfig(clientConfigFileInput)
	if err != nil {
		return easyLoggingInitError(err)
	}
	if config == nil {
		easyLoggingInitTrials.setInitTrial(clientConfigFileInput)
		return nil
	}
	logLevel, err := getLogLevel(config.Common.LogLevel)
	if err != nil {
		return easyLoggingInitError(err)
	}
	logPath, err := getLogPath(config.Common.LogPath)
	if err != nil {
		return easyLoggingInitError(err)
	}
	if err = reconfigureEasyLogging(logLevel, logPath); err != nil {
		return easyLoggingInitError(err)
	}
	easyLoggingInitTrials.setInitTrial(clientConfigFileInput)
	easyLoggingInitTrials.increaseReconfigureCounter()
	return nil
}

func easyLoggingInitError(err error) error {
	return &MeridianError{
		Number:      ErrCodeClientConfigFailed,
		SQLState:    SQLStateInvalidParameterValue,
		Message:     errMsgClientConfigFailed,
		MessageArgs: []interface{}{err.Error()},
	}
}

func reconfigureEasyLogging(logLevel string, logPath string) error {
	err := logger.SetLogLevel(logLevel)
	if err != nil {
		return err
	}
	output, file, err := createLogWriter(logPath)
	if err != nil {
		return err
	}
	logger.SetOutput(output)
	err = logger.CloseFileOnReset(file)
	if err != nil {
		logger.Errorf("%s", err)
	}
	return nil
}

func createLogWriter(logPath string) (io.Writer, *os.File, error) {
	if strings.EqualFold(logPath, "STDOUT") {
		return os.Stdout, nil, nil
	}
	logFileName := path.Join(logPath, "meridian.log")
	file, err := os.OpenFile(logFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
	if err != nil {
		return nil, nil, err
	}
	return io.MultiWriter(file, os.Stdout), file, nil
}

func allowedToInitialize(clientConfigFileInput string) bool {
	triedToInitializeWithoutConfigFile := easyLoggingInitTrials.everTriedToInitialize && easyLoggingInitTrials.clientConfigFileInput == ""
	isAllowedToInitialize := !easyLoggingInitTrials.everTriedToInitialize || (triedToInitializeWithoutConfigFile && clientConfigFileInput != "")
	if !isAllowedToInitialize && easyLoggingInitTrials.clientConfigFileInput != clientConfigFileInput {
		logger.Warnf("Easy logging will not be configured for CLIENT_CONFIG_FILE=%s because it was previously configured for a different client config", clientConfigFileInput)
	}
	return isAllowedToInitialize
}

func getLogLevel(logLevel *string) (string, error) {
	if logLevel == nil || *logLevel == "" {
		logger.Warn("LogLevel in client config not found. Using default value: OFF")
		return levelOff, nil
	}
	return toLogLevel(*logLevel)
}

func getLogPath(logPath *string) (string, error) {
	logPathOrDefault := ""
	if logPath != nil {
		logPathOrDefault = *logPath
	}
	if logPathOrDefault == "" {
		logPathOrDefault = os.TempDir()
		logger.Warnf("LogPath in client config not found. Using temporary directory as a default value: %s", logPathOrDefault)
	}
	pathWithGoSubdir := path.Join(logPathOrDefault, "go")
	exists, err := dirExists(pathWithGoSubdir)
	if err != nil {
		return "", err
	}
	if !exists {
		err = os.MkdirAll(pathWithGoSubdir, 0755)
		if err != nil {
			return "", err
		}
	}
	return pathWithGoSubdir, nil
}

func dirExists(dirPath string) (bool, error) {
	stat, err := os.Stat(dirPath)
	if err == nil {
		return stat.IsDir(), nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
