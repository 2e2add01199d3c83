package internal

import "fmt"

// StorageError represents errors accessing the workspace key-value store
type StorageError struct {
	Key string
	Op  string // "open", "get", "put", "flush"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NetworkError represents a failed exchange with the assistant service
type NetworkError struct {
	Endpoint string
	Status   int // 0 when the request never completed
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("network error [%d] %s: %v", e.Status, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("network error %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ValidationError represents rejected user input (empty message, empty code)
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.Field, e.Reason)
}

// ExportError represents errors during transcript export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
