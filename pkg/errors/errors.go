package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// MalformedRecordError represents an input record with the wrong field
	// count, a non-numeric quantity or price, or an unknown side.
	MalformedRecordError ErrorCode = "malformed_record_error"
	// SourceUnavailableError represents an order source that could not be
	// opened after retries.
	SourceUnavailableError ErrorCode = "source_unavailable_error"
	// SourceReadError represents a transport-level failure while reading
	// from an order source.
	SourceReadError ErrorCode = "source_read_error"
	// SinkWriteError represents a failure writing a trade batch to a sink.
	SinkWriteError ErrorCode = "sink_write_error"
	// ConfigError represents an invalid or incomplete configuration.
	ConfigError ErrorCode = "config_error"
)

// String returns the string form of the code.
func (c ErrorCode) String() string {
	return string(c)
}
