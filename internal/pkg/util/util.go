package util

import (
	"io"
	"os"
	"path/filepath"
)

// GetCurrentAbPathByExecutable 获取当前执行程序所在的绝对路径
func GetCurrentAbPathByExecutable() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	res, _ := filepath.EvalSymlinks(filepath.Dir(exePath))
	return res, nil
}

// WriteOutput 将内容写入指定文件，文件路径为空或"-"时写入stdout
func WriteOutput(stdout io.Writer, fPath string, content string) error {
	if fPath == "" || fPath == "-" {
		_, err := io.WriteString(stdout, content)
		return err
	}

	// 创建上级目录
	if dir := filepath.Dir(fPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(fPath, []byte(content), 0o644)
}
