// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotatingWriterConfig configures the on disk log files.
type RotatingWriterConfig struct {
	MaxSize   int    `json:"maxSize"` // in megabytes
	MaxFiles  int    `json:"maxFiles"`
	MaxAge    int    `json:"maxAge"` // in days
	Directory string `json:"directory"`
	Compress  bool   `json:"compress"`
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	DisableWriterDisplaying bool   `json:"disableWriterDisplaying"`
	LogLevel                Level  `json:"logLevel"`
	DisplayLevel            Level  `json:"displayLevel"`
	LogFormat               Format `json:"logFormat"`
	LoggerName              string `json:"loggerName"`
}

func DefaultConfig() Config {
	return Config{
		RotatingWriterConfig: RotatingWriterConfig{
			MaxSize:  8, // 8 MB
			MaxFiles: 7,
			MaxAge:   0, // keep forever
		},
		LogLevel:     Info,
		DisplayLevel: Info,
		LogFormat:    Plain,
	}
}

// NewFromConfig builds a logger that displays to stdout and, if a directory is
// configured, writes to a rotating file named after the logger.
func NewFromConfig(config Config) Logger {
	displayCore := NewWrappedCore(config.DisplayLevel, nopCloser{os.Stdout}, config.LogFormat.ConsoleEncoder())
	displayCore.WriterDisabled = config.DisableWriterDisplaying
	cores := []WrappedCore{displayCore}

	if config.Directory != "" && config.LogLevel != Off {
		name := config.LoggerName
		if name == "" {
			name = "main"
		}
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, name+".log"),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxFiles,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
		cores = append(cores, NewWrappedCore(config.LogLevel, rw, config.LogFormat.FileEncoder()))
	}
	return NewLogger(config.LoggerName, cores...)
}

// nopCloser keeps Stop from closing stdout.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
