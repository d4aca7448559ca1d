// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package log provides a global logger for logging.
package log

import (
	stdlog "log"
	"net/http"
	"net/url"
	"os"
	"sync"

	"github.com/pkg/errors"
	"go.elastic.co/ecszap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const _globalLoggerName = "glog"

// GlobalConfig defines the global logger configurations.
type GlobalConfig struct {
	Zap                *zap.Config `json:"zap" yaml:"zap"`
	StderrRedirectFile *string     `json:"stderrRedirectFile" yaml:"stderrRedirectFile"`
	StdLogRedirect     bool        `json:"stdLogRedirect" yaml:"stdLogRedirect"`
	EcsIntegration     bool        `json:"ecsIntegration" yaml:"ecsIntegration"`
}

var (
	_logMu        sync.RWMutex
	_globalLogger *zap.Logger
	_subLoggers   map[string]*zap.Logger
	_logServeMux  = http.NewServeMux()
)

func init() {
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	zapCfg.Level.SetLevel(zap.InfoLevel)
	l, err := zapCfg.Build()
	if err != nil {
		stdlog.Println("Failed to initialize default logger.")
		return
	}
	_globalLogger = l
	_subLoggers = make(map[string]*zap.Logger)
	if err := zap.RegisterSink("rotate", newRotateSink); err != nil {
		l.Error("Failed to register rotate sink.", zap.Error(err))
	}
}

// L wraps the global logger.
func L() *zap.Logger {
	_logMu.RLock()
	l := _globalLogger
	_logMu.RUnlock()
	return l
}

// S wraps the sugared global logger.
func S() *zap.SugaredLogger { return L().Sugar() }

// Logger returns the sub logger of the given name, or the global logger if the
// name has not been registered via InitLoggers.
func Logger(name string) *zap.Logger {
	_logMu.RLock()
	defer _logMu.RUnlock()
	logger, ok := _subLoggers[name]
	if !ok {
		return _globalLogger
	}
	return logger
}

// InitLoggers initializes the global logger and the sub loggers.
func InitLoggers(globalCfg GlobalConfig, subCfgs map[string]GlobalConfig, opts ...zap.Option) error {
	if _, exists := subCfgs[_globalLoggerName]; exists {
		return errors.Errorf("'%s' is a reserved name for the global logger", _globalLoggerName)
	}
	if globalCfg.Zap == nil {
		zapCfg := zap.NewProductionConfig()
		globalCfg.Zap = &zapCfg
	}
	glog, err := buildLogger(globalCfg, opts...)
	if err != nil {
		return err
	}
	subLoggers := make(map[string]*zap.Logger)
	levelHandlers := map[string]http.Handler{_globalLoggerName: globalCfg.Zap.Level}
	for name, cfg := range subCfgs {
		// sub loggers fall back to the global zap config when they carry none
		if cfg.Zap == nil {
			cfg.Zap = globalCfg.Zap
		}
		logger, err := buildLogger(cfg, opts...)
		if err != nil {
			return errors.Wrapf(err, "failed to build sub logger '%s'", name)
		}
		subLoggers[name] = logger.Named(name)
		levelHandlers[name] = cfg.Zap.Level
	}

	_logMu.Lock()
	_globalLogger = glog
	_subLoggers = subLoggers
	for name, h := range levelHandlers {
		_logServeMux.Handle("/"+name, h)
	}
	_logMu.Unlock()
	zap.ReplaceGlobals(glog)
	return nil
}

// RegisterLevelConfigMux registers log's level config http mux.
func RegisterLevelConfigMux(root *http.ServeMux) {
	_logMu.Lock()
	root.Handle("/logging/", http.StripPrefix("/logging", _logServeMux))
	_logMu.Unlock()
}

func buildLogger(cfg GlobalConfig, opts ...zap.Option) (*zap.Logger, error) {
	zapCfg := cfg.Zap
	if zapCfg == nil {
		c := zap.NewProductionConfig()
		zapCfg = &c
	}
	if cfg.EcsIntegration {
		zapCfg.EncoderConfig = ecszap.ECSCompatibleEncoderConfig(zapCfg.EncoderConfig)
	}
	logger, err := zapCfg.Build(opts...)
	if err != nil {
		return nil, err
	}
	if cfg.StderrRedirectFile != nil {
		stderrF, err := os.OpenFile(*cfg.StderrRedirectFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		if err := redirectStderr(stderrF); err != nil {
			return nil, err
		}
	}
	if cfg.StdLogRedirect {
		zap.RedirectStdLog(logger)
	}
	return logger, nil
}

// rotateSink adapts RotateFile into a zap sink so that output paths can use the
// rotate:// scheme, e.g. "rotate:///var/log/routehub.log".
type rotateSink struct {
	*RotateFile
}

func (rotateSink) Sync() error { return nil }

func newRotateSink(u *url.URL) (zap.Sink, error) {
	return rotateSink{&RotateFile{Filename: u.Path}}, nil
}
