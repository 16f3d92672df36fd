// Package logging configures the process-wide logrus logger.
package logging

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ninjafood/ordering/internal/config"
)

// Setup routes log output to a rotated file so the interactive terminal
// stays clean, and applies the configured level.
func Setup(conf *config.Config) {
	log.SetOutput(&lumberjack.Logger{
		Filename:   conf.Logging.Path,
		MaxSize:    32, // megabytes
		MaxBackups: 2,
		MaxAge:     28, // days
		Compress:   true,
	})
	switch conf.Logging.Level {
	case "trace":
		log.SetLevel(log.TraceLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "fatal":
		log.SetLevel(log.FatalLevel)
	case "panic":
		log.SetLevel(log.PanicLevel)
	default:
		log.SetLevel(log.InfoLevel)
		log.Warnf("unknown logging level %q, using info", conf.Logging.Level)
	}
	log.SetFormatter(&log.TextFormatter{
		PadLevelText:    true,
		DisableColors:   true,
		TimestampFormat: time.DateTime,
	})
}
