package lib

import (
	"fmt"
	"os"

	"github.com/oarkflow/json"
)

// ReadJSONFile decodes the JSON document at path into a T.
func ReadJSONFile[T any](path string) (T, error) {
	var value T
	data, err := os.ReadFile(path)
	if err != nil {
		return value, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return value, nil
}

func Unique[T comparable](slice []T) (result []T) {
	seen := make(map[T]struct{})
	for _, v := range slice {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}
