package utils

import (
	"os"
	"strings"
)

// Reads the content of the given file
func ReadFileContent(filePath string) ([]byte, error) {
	content, err := os.ReadFile(filePath)

	if err != nil {
		return nil, err
	}

	return content, nil
}

// ReadFileLines reads the content of the given file and returns each line as a string slice
// Empty lines and surrounding whitespaces are removed
func ReadFileLines(filePath string) ([]string, error) {
	content, err := ReadFileContent(filePath)

	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(content), "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return DeleteEmptyStrings(lines), nil
}

func FileExists(path string) bool {
	_, err := os.Stat(path)

	return !os.IsNotExist(err)
}
