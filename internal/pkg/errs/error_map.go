/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
user-facing messages and taxonomy classification.
*/
package errs

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the taxonomy kind and the fallback
// user message used when no server-provided text is available.
var errorMap = map[int]CustomError{
	// 1xxx: Transport Errors
	ErrNetworkFailure:    {Code: ErrNetworkFailure, Kind: KindTransport, Message: "Could not reach the server. Check your connection."},
	ErrBadServerResponse: {Code: ErrBadServerResponse, Kind: KindTransport, Message: "The server returned an unexpected response."},
	ErrChatDisconnected:  {Code: ErrChatDisconnected, Kind: KindTransport, Message: "Chat connection lost. Reconnecting..."},
	ErrChatSendThrottled: {Code: ErrChatSendThrottled, Kind: KindTransport, Message: "You are sending messages too quickly."},
	ErrChatSendQueueFull: {Code: ErrChatSendQueueFull, Kind: KindTransport, Message: "Chat is busy. Please try again."},

	// 2xxx: Validation Errors
	ErrInvalidInput:   {Code: ErrInvalidInput, Kind: KindValidation, Message: "Invalid input."},
	ErrMessageEmpty:   {Code: ErrMessageEmpty, Kind: KindValidation, Message: "Message cannot be empty."},
	ErrMessageTooLong: {Code: ErrMessageTooLong, Kind: KindValidation, Message: "Message cannot exceed %d characters."},
	ErrSendInFlight:   {Code: ErrSendInFlight, Kind: KindValidation, Message: "A message is already being sent."},
	ErrNoCurrentUser:  {Code: ErrNoCurrentUser, Kind: KindValidation, Message: "Please sign in to use the chat."},

	// 3xxx: Authentication and Session Errors
	ErrInvalidCredentials:   {Code: ErrInvalidCredentials, Kind: KindAuthentication, Message: "Incorrect email or password."},
	ErrRegistrationRejected: {Code: ErrRegistrationRejected, Kind: KindAuthentication, Message: "Could not create your account."},
	ErrUnauthorized:         {Code: ErrUnauthorized, Kind: KindAuthentication, Message: "Please sign in to continue."},
	ErrResetCodeInvalid:     {Code: ErrResetCodeInvalid, Kind: KindAuthentication, Message: "Invalid or expired reset code."},

	// 4xxx: Missing Resource Errors
	ErrNotFound: {Code: ErrNotFound, Kind: KindNotFound, Message: "We could not find what you were looking for."},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Kind: KindUnknown, Message: "Something went wrong. Please try again."},
}
