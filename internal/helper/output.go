// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package helper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File — сгенерированный файл. Path относителен каталогу вывода.
type File struct {
	Path    string `json:"path"`
	Content []byte `json:"content"`
}

// PrepareOutput создаёт каталог вывода и возвращает его абсолютный путь.
func PrepareOutput(output string) (dir string, err error) {

	if dir, err = filepath.Abs(output); err != nil {
		return "", fmt.Errorf("failed to resolve output directory: %w", err)
	}
	if err = os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return
}

// Write записывает файлы в dir. Пути вне dir отклоняются.
func Write(dir string, files []File) (err error) {

	if dir, err = PrepareOutput(dir); err != nil {
		return
	}
	for _, file := range files {
		target := filepath.Join(dir, filepath.FromSlash(file.Path))
		if target != dir && !strings.HasPrefix(target, dir+string(filepath.Separator)) {
			return fmt.Errorf("file %s is outside of output directory", file.Path)
		}
		if err = os.MkdirAll(filepath.Dir(target), 0700); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", file.Path, err)
		}
		if err = os.WriteFile(target, file.Content, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Path, err)
		}
	}
	return
}
