// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ava-labs/counter-cli/utils"
)

type Config struct {
	// Level is a zap level name (debug, info, warn, error).
	Level     string
	Directory string
	Name      string

	// Display also writes the log to stderr.
	Display bool

	MaxSize  int // megabytes
	MaxAge   int // days
	MaxFiles int
	Compress bool
}

func NewDefaultConfig(directory string, name string) Config {
	return Config{
		Level:     "info",
		Directory: directory,
		Name:      name,
		MaxSize:   8,
		MaxAge:    7,
		MaxFiles:  4,
		Compress:  true,
	}
}

// New returns a logger writing JSON lines to a rotated file in
// [config.Directory]. The returned closer flushes and releases the file.
func New(config Config) (*zap.Logger, io.Closer, error) {
	level, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		return nil, nil, err
	}
	if _, err := utils.InitSubDirectory(config.Directory, ""); err != nil {
		return nil, nil, err
	}

	fileEncoderConfig := zap.NewProductionEncoderConfig()
	fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	rw := &lumberjack.Logger{
		Filename:   filepath.Join(config.Directory, config.Name+".log"),
		MaxSize:    config.MaxSize,
		MaxAge:     config.MaxAge,
		MaxBackups: config.MaxFiles,
		Compress:   config.Compress,
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig), zapcore.AddSync(rw), level),
	}
	if config.Display {
		consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
		consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoderConfig),
			zapcore.Lock(os.Stderr),
			level,
		))
	}

	log := zap.New(zapcore.NewTee(cores...)).Named(config.Name)
	return log, &closer{log: log, rw: rw}, nil
}

type closer struct {
	log *zap.Logger
	rw  *lumberjack.Logger
}

func (c *closer) Close() error {
	// stderr may not support sync.
	_ = c.log.Sync()
	return c.rw.Close()
}
