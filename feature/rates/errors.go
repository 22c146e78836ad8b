package rates

import "fmt"

// ConfigError reports a run that cannot proceed because the request does
// not match the vendor's declared configuration: an unknown vendor, a
// wrong number of files for the vendor's shape, or a declared sheet
// missing from the upload. Retrying the same request will not help.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Reason
}

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// IncompleteDataError reports that a required row-set came up empty after
// reading and filtering: either a declared sheet held no usable rows or
// no master data exists for the vendor. The request was well-formed, the
// data was not.
type IncompleteDataError struct {
	What string
}

func (e *IncompleteDataError) Error() string {
	return fmt.Sprintf("no usable rows in %s", e.What)
}
