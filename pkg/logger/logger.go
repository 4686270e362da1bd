// Package logger 提供目录服务的分级日志：按天一个文件，同时输出到控制台。
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	InfoLogger    *log.Logger
	WarningLogger *log.Logger
	ErrorLogger   *log.Logger
)

// 日志目录，可通过 LOG_DIR 环境变量覆盖
const defaultLogDir = "logs"

// 日志文件名前缀，完整文件名形如 directory_2026-08-28.log
const logFilePrefix = "directory"

// SetupLogger 初始化日志输出。日志同时写入控制台与当天的日志文件，
// 文件已存在时追加（同一天内重启不丢历史）。
func SetupLogger() error {
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = defaultLogDir
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("创建日志目录失败: %v", err)
	}

	fileName := fmt.Sprintf("%s_%s.log", logFilePrefix, time.Now().Format("2006-01-02"))
	logFile, err := os.OpenFile(filepath.Join(logDir, fileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("打开日志文件失败: %v", err)
	}

	out := io.MultiWriter(os.Stdout, logFile)
	flags := log.Ldate | log.Ltime | log.Lshortfile

	InfoLogger = log.New(out, "INFO: ", flags)
	WarningLogger = log.New(out, "WARNING: ", flags)
	ErrorLogger = log.New(out, "ERROR: ", flags)

	return nil
}

// Info 记录信息级别的日志
func Info(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}

// Warning 记录警告级别的日志
func Warning(format string, v ...interface{}) {
	WarningLogger.Printf(format, v...)
}

// Error 记录错误级别的日志
func Error(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
}
