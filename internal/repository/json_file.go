package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// readJSONFile 读取 JSON 文件到 v。
// 文件不存在或内容损坏时返回 false，调用方按空数据处理。
func readJSONFile(path string, v interface{}, logger *zap.Logger) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("读取数据文件失败，按空数据处理", zap.String("path", path), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.Warn("数据文件格式错误，按空数据处理", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// writeJSONFile 先写临时文件再 rename，避免进程中断留下半截文件
func writeJSONFile(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("序列化 %s 失败: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("创建临时文件失败: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("替换 %s 失败: %w", path, err)
	}
	return nil
}
