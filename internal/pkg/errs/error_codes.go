/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the client and when reporting failures to the user.
*/
package errs

// 1xxx: Transport Errors
const (
	// ErrNetworkFailure indicates that a request never produced a server response.
	ErrNetworkFailure = 1001

	// ErrBadServerResponse indicates that a server response body could not be decoded.
	ErrBadServerResponse = 1002

	// ErrChatDisconnected indicates that the chat connection was lost.
	ErrChatDisconnected = 1101

	// ErrChatSendThrottled indicates that an outgoing chat message was dropped by the client-side rate limiter.
	ErrChatSendThrottled = 1102

	// ErrChatSendQueueFull indicates that the outbound chat queue is full and a message was dropped.
	ErrChatSendQueueFull = 1103
)

// 2xxx: Validation Errors
const (
	// ErrInvalidInput indicates that request input failed client-side validation.
	ErrInvalidInput = 2001

	// ErrMessageEmpty indicates an attempt to send an empty or whitespace-only chat message.
	ErrMessageEmpty = 2101

	// ErrMessageTooLong indicates a chat message exceeding the maximum length.
	ErrMessageTooLong = 2102

	// ErrSendInFlight indicates that a send was attempted while another one was still being handed off.
	ErrSendInFlight = 2103

	// ErrNoCurrentUser indicates a chat operation that requires an authenticated user.
	ErrNoCurrentUser = 2104
)

// 3xxx: Authentication and Session Errors
const (
	// ErrInvalidCredentials indicates that the server rejected a login attempt.
	ErrInvalidCredentials = 3001

	// ErrRegistrationRejected indicates that the server rejected an account registration.
	ErrRegistrationRejected = 3002

	// ErrUnauthorized indicates that the server rejected the bearer token.
	ErrUnauthorized = 3003

	// ErrResetCodeInvalid indicates an invalid or expired password reset code.
	ErrResetCodeInvalid = 3004
)

// 4xxx: Missing Resource Errors
const (
	// ErrNotFound indicates that the requested remote record does not exist.
	ErrNotFound = 4001
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general client error.
	ErrUnknown = 5000
)
