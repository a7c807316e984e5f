package logging

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LogConfig struct {
	Level        zapcore.Level `json:"level" yaml:"level"`                 // 最低日志等级，例如：info
	FileName     string        `json:"file_name" yaml:"fileName"`          // 日志文件位置，为空时只输出到控制台
	MaxSize      int           `json:"max_size" yaml:"maxSize"`            // 切割前日志文件的最大大小，单位MB，0表示100MB
	MaxAge       int           `json:"max_age" yaml:"maxAge"`              // 旧日志文件的最大保留天数，0表示不按天数删除
	MaxBackups   int           `json:"max_backups" yaml:"maxBackups"`      // 旧日志文件的最大保留个数，0表示全部保留（仍受MaxAge限制）
	IsStdout     bool          `json:"is_stdout" yaml:"isStdout"`          // 写入文件时是否同时输出到控制台
	IsStackTrace bool          `json:"is_stack_trace" yaml:"isStackTrace"` // ERROR及以上是否输出堆栈信息
}

// InitLogger 初始化Logger，并替换全局Logger
func InitLogger(lCfg *LogConfig) (err error) {
	if lCfg == nil {
		lCfg = &LogConfig{Level: zapcore.InfoLevel, IsStdout: true}
	}

	writeSyncer := getLogWriter(lCfg.FileName, lCfg.MaxSize, lCfg.MaxBackups, lCfg.MaxAge, lCfg.IsStdout)
	encoder := getEncoder()

	core := zapcore.NewCore(encoder, writeSyncer, lCfg.Level)
	var logger *zap.Logger
	if lCfg.IsStackTrace {
		logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	} else {
		logger = zap.New(core, zap.AddCaller())
	}
	zap.ReplaceGlobals(logger)
	return
}

// getEncoder 负责设置 encoding 的日志格式
func getEncoder() zapcore.Encoder {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}
	encodeConfig.TimeKey = "time"
	encodeConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodeConfig.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewJSONEncoder(encodeConfig)
}

// getLogWriter 负责日志写入的位置
func getLogWriter(filename string, maxsize, maxBackup, maxAge int, isStdout bool) zapcore.WriteSyncer {
	// 未配置日志文件时只输出到控制台
	if filename == "" {
		return zapcore.Lock(os.Stdout)
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   filename,  // 文件位置
		MaxSize:    maxsize,   // 进行切割之前,日志文件的最大大小(MB为单位)
		MaxAge:     maxAge,    // 保留旧文件的最大天数
		MaxBackups: maxBackup, // 保留旧文件的最大个数
		Compress:   true,      // 是否压缩/归档旧文件
	}
	if isStdout {
		return zapcore.NewMultiWriteSyncer(zapcore.AddSync(lumberJackLogger), zapcore.Lock(os.Stdout))
	}
	return zapcore.AddSync(lumberJackLogger)
}
