/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"fmt"
	"io"
	"os"
	"regexp"

	specs "github.com/macaroni-os/jessica/pkg/specs"

	"github.com/kyokomi/emoji"
	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type JessicaLogger struct {
	Config *specs.JessicaConfig
	Logger *zap.Logger
	Aurora aurora.Aurora
	// Console output. Rendered text goes to stdout, so messages
	// default to stderr.
	Writer io.Writer
}

var (
	defaultLogger *JessicaLogger = nil
	emojiRegex                   = regexp.MustCompile(`[:][\w]+[:]`)
)

func NewJessicaLogger(config *specs.JessicaConfig) *JessicaLogger {
	return &JessicaLogger{
		Logger: nil,
		Aurora: aurora.NewAurora(config.GetLogging().Color),
		Config: config,
		Writer: os.Stderr,
	}
}

func (l *JessicaLogger) SetAsDefault() {
	defaultLogger = l
}

func GetDefaultLogger() *JessicaLogger {
	return defaultLogger
}

func (l *JessicaLogger) InitLogger2File() error {
	var err error

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{l.Config.GetLogging().Path}
	cfg.Level = level2AtomicLevel(l.Config.GetLogging().Level)
	cfg.ErrorOutputPaths = []string{}
	if l.Config.GetLogging().JsonFormat {
		cfg.Encoding = "json"
	} else {
		cfg.Encoding = "console"
	}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l.Logger, err = cfg.Build()
	if err != nil {
		fmt.Fprint(os.Stderr, "Error on initialize file logger: "+err.Error()+"\n")
		return err
	}

	return nil
}

func (l *JessicaLogger) Sync() error {
	if l == nil || l.Logger == nil {
		return nil
	}
	return l.Logger.Sync()
}

func level2Number(level string) int {
	switch level {
	case "error":
		return 0
	case "warning":
		return 1
	case "info":
		return 2
	default:
		return 3
	}
}

func (l *JessicaLogger) log2File(level, msg string) {
	switch level {
	case "error":
		l.Logger.Error(msg)
	case "warning":
		l.Logger.Warn(msg)
	case "info":
		l.Logger.Info(msg)
	default:
		l.Logger.Debug(msg)
	}
}

func level2AtomicLevel(level string) zap.AtomicLevel {
	switch level {
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	case "warning":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "info":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	}
}

// Msg is a no-op on a nil logger, so library code can log unconditionally.
func (l *JessicaLogger) Msg(level string, withoutColor, ln bool, msg ...interface{}) {
	var message string
	var confLevel, msgLevel int

	if l == nil {
		return
	}

	if l.Config.GetGeneral().HasDebug() {
		confLevel = 3
	} else {
		confLevel = level2Number(l.Config.GetLogging().Level)
	}
	msgLevel = level2Number(level)
	if msgLevel > confLevel {
		return
	}

	for idx, m := range msg {
		if idx > 0 {
			message += " "
		}
		message += fmt.Sprintf("%v", m)
	}

	var levelMsg string

	if withoutColor || !l.Config.GetLogging().Color {
		levelMsg = message
	} else {
		switch level {
		case "warning":
			levelMsg = l.Aurora.Bold(l.Aurora.Yellow(":construction:" + message)).String()
		case "debug":
			levelMsg = l.Aurora.White(message).String()
		case "info":
			levelMsg = l.Aurora.Bold(message).String()
		case "error":
			levelMsg = l.Aurora.Bold(l.Aurora.Red(":bomb:" + message + ":fire:")).BgBlack().String()
		}
	}

	if l.Config.GetLogging().EnableEmoji {
		levelMsg = emoji.Sprint(levelMsg)
	} else {
		levelMsg = emojiRegex.ReplaceAllString(levelMsg, "")
	}

	if l.Logger != nil {
		l.log2File(level, message)
	}

	if ln {
		fmt.Fprintln(l.Writer, levelMsg)
	} else {
		fmt.Fprint(l.Writer, levelMsg)
	}
}

func (l *JessicaLogger) Warning(mess ...interface{}) {
	l.Msg("warning", false, true, mess...)
}

func (l *JessicaLogger) Debug(mess ...interface{}) {
	l.Msg("debug", false, true, mess...)
}

func (l *JessicaLogger) Info(mess ...interface{}) {
	l.Msg("info", false, true, mess...)
}

func (l *JessicaLogger) InfoC(mess ...interface{}) {
	l.Msg("info", true, true, mess...)
}

func (l *JessicaLogger) Error(mess ...interface{}) {
	l.Msg("error", false, true, mess...)
}

func (l *JessicaLogger) Fatal(mess ...interface{}) {
	l.Error(mess...)
	l.Sync()
	os.Exit(1)
}
