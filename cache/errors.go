package cache

import (
	"errors"
	"fmt"
)

// Common conditions shared with the generic cache-driver contract. They are
// carried inside a DriverError and matched with errors.Is.
var (
	// ErrAlreadyConnected is returned by Connect on a driver that already
	// holds a live connection.
	ErrAlreadyConnected = errors.New("driver is already connected")
	// ErrNotConnected is returned when an operation requires a live
	// connection and the driver has none.
	ErrNotConnected = errors.New("driver is not connected")
	// ErrTooFewRecords is returned by Get on a cache miss, distinct from the
	// infrastructure failures carried by RedisError.
	ErrTooFewRecords = errors.New("got too few records")
)

// ErrorCode identifies one member of the closed Redis driver error set.
type ErrorCode int

const (
	// ErrorCodeStart indicates the connection or pool failed to initialize.
	ErrorCodeStart ErrorCode = iota
	// ErrorCodeActor indicates the underlying client worker failed or was
	// already closed.
	ErrorCodeActor
	// ErrorCodeConnection indicates a connection could not be established.
	ErrorCodeConnection
	// ErrorCodeTCP indicates a transport-level failure.
	ErrorCodeTCP
	// ErrorCodeServer indicates the server returned an explicit error.
	ErrorCodeServer
	// ErrorCodeShutdown indicates the connection or pool failed to shut down
	// cleanly.
	ErrorCodeShutdown
	// ErrorCodePool indicates a failure acquiring or using a pooled
	// connection.
	ErrorCodePool
	// ErrorCodeUnknownResponse indicates a protocol response that could not
	// be interpreted, or a benign not-found that raced with a dependent
	// operation.
	ErrorCodeUnknownResponse
)

// String returns the string representation of ErrorCode.
func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeStart:
		return "START"
	case ErrorCodeActor:
		return "ACTOR"
	case ErrorCodeConnection:
		return "CONNECTION"
	case ErrorCodeTCP:
		return "TCP"
	case ErrorCodeServer:
		return "SERVER"
	case ErrorCodeShutdown:
		return "SHUTDOWN"
	case ErrorCodePool:
		return "POOL"
	case ErrorCodeUnknownResponse:
		return "UNKNOWN_RESPONSE"
	default:
		return "UNKNOWN"
	}
}

// RedisError is a Redis driver failure with its taxonomy code and, when
// available, the underlying cause. Callers match exhaustively on Code.
type RedisError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *RedisError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("redis driver error [%s]: %s", e.Code.String(), e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("redis driver error [%s]: %v", e.Code.String(), e.Cause)
	}
	return fmt.Sprintf("redis driver error [%s]", e.Code.String())
}

// Unwrap returns the underlying cause error.
func (e *RedisError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a RedisError with the same code.
func (e *RedisError) Is(target error) bool {
	if t, ok := target.(*RedisError); ok {
		return e.Code == t.Code
	}
	return false
}

// NewRedisError creates a new RedisError.
func NewRedisError(code ErrorCode, message string, cause error) *RedisError {
	return &RedisError{Code: code, Message: message, Cause: cause}
}

// NewStartError creates a start failure error.
func NewStartError(cause error) *RedisError {
	return NewRedisError(ErrorCodeStart, "failed to start connection", cause)
}

// NewActorError creates a worker failure error.
func NewActorError(cause error) *RedisError {
	return NewRedisError(ErrorCodeActor, "underlying client worker failed", cause)
}

// NewConnectionError creates a connection failure error.
func NewConnectionError(cause error) *RedisError {
	return NewRedisError(ErrorCodeConnection, "failed to establish connection", cause)
}

// NewTCPError creates a transport failure error carrying the transport error.
func NewTCPError(cause error) *RedisError {
	return NewRedisError(ErrorCodeTCP, "transport failure", cause)
}

// NewServerError creates a server-reported error carrying its message.
func NewServerError(message string) *RedisError {
	return NewRedisError(ErrorCodeServer, message, nil)
}

// NewShutdownError creates a shutdown failure error.
func NewShutdownError(cause error) *RedisError {
	return NewRedisError(ErrorCodeShutdown, "failed to shut down cleanly", cause)
}

// NewPoolError creates a pool failure error carrying the pool error.
func NewPoolError(cause error) *RedisError {
	return NewRedisError(ErrorCodePool, "pooled connection failure", cause)
}

// NewUnknownResponseError creates an uninterpretable-response error.
func NewUnknownResponseError(message string, cause error) *RedisError {
	return NewRedisError(ErrorCodeUnknownResponse, message, cause)
}

// IsConnectionError checks if the error is a connection error.
func IsConnectionError(err error) bool {
	return hasErrorCode(err, ErrorCodeConnection)
}

// IsServerError checks if the error is a server-reported error.
func IsServerError(err error) bool {
	return hasErrorCode(err, ErrorCodeServer)
}

// IsPoolError checks if the error is a pool error.
func IsPoolError(err error) bool {
	return hasErrorCode(err, ErrorCodePool)
}

// IsTooFewRecordsError checks if the error is a cache miss.
func IsTooFewRecordsError(err error) bool {
	return errors.Is(err, ErrTooFewRecords)
}

func hasErrorCode(err error, code ErrorCode) bool {
	var re *RedisError
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}

// Op names one driver operation for error reporting.
type Op string

const (
	OpConnect    Op = "connect"
	OpDisconnect Op = "disconnect"
	OpSet        Op = "set"
	OpGet        Op = "get"
	OpDelete     Op = "delete"
)

// DriverError wraps the failure of one driver operation. Err is either a
// *RedisError from the taxonomy or one of the common condition sentinels.
type DriverError struct {
	Op  Op
	Err error
}

// Error implements the error interface.
func (e *DriverError) Error() string {
	return fmt.Sprintf("cache driver %s: %v", e.Op, e.Err)
}

// Unwrap returns the wrapped error.
func (e *DriverError) Unwrap() error {
	return e.Err
}
