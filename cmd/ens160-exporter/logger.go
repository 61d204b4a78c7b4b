package main

import (
	logger "github.com/d2r2/go-logger"
	log "github.com/sirupsen/logrus"
)

func initLogger(level string) error {
	formatter := &log.TextFormatter{
		FullTimestamp: true,
	}
	log.SetFormatter(formatter)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	lv := logger.InfoLevel
	switch lvl {
	case log.TraceLevel, log.DebugLevel:
		lv = logger.DebugLevel
	case log.WarnLevel:
		lv = logger.WarnLevel
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		lv = logger.ErrorLevel
	}

	// go-i2c logs every transfer at debug level
	logger.ChangePackageLogLevel("i2c", lv)

	return nil
}
