package utils

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

var (
	ErrorLogger *log.Logger
	PanicLogger *log.Logger
)

// InitLogger открывает файловые логи ошибок и паник в каталоге logs/
func InitLogger() error {
	if err := os.MkdirAll("logs", 0755); err != nil {
		return err
	}
	var err error
	if ErrorLogger, err = openLog("errors.log"); err != nil {
		return err
	}
	PanicLogger, err = openLog("panics.log")
	return err
}

func openLog(name string) (*log.Logger, error) {
	f, err := os.OpenFile(filepath.Join("logs", name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	return log.New(f, "", 0), nil
}

func LogError(err error, context string) {
	if ErrorLogger == nil {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	ErrorLogger.Printf("[%s] ERROR in %s:%d - %s: %v",
		time.Now().Format("2006-01-02 15:04:05"), filepath.Base(file), line, context, err)
}

func LogPanic(recovered interface{}, context string) {
	if PanicLogger == nil {
		return
	}
	_, file, line, _ := runtime.Caller(2)
	PanicLogger.Printf("[%s] PANIC in %s:%d - %s: %v",
		time.Now().Format("2006-01-02 15:04:05"), filepath.Base(file), line, context, recovered)
}
