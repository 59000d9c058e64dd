// Package errors provides user-friendly error types with detailed messages and recovery suggestions.
//
// This package defines custom error types that provide clear, actionable error messages
// to end users. Unlike standard Go errors, these errors include:
//   - Human-readable problem descriptions
//   - Suggested solutions or recovery actions
//   - Context about what the user was trying to do
//
// Example usage:
//
//	if port < 1 || port > 65535 {
//	    return &errors.UserError{
//	        Code:       "INVALID_PORT",
//	        Message:    "Invalid port number",
//	        Details:    fmt.Sprintf("Port %d is outside valid range (1-65535)", port),
//	        Suggestion: "Please specify a port between 1 and 65535",
//	    }
//	}
//
// Error Types:
//
// UserError: End-user facing errors with recovery guidance
//   - Code: Machine-readable identifier, e.g. "INVALID_PORT"
//   - Message: What went wrong
//   - Details: Specific information about the error
//   - Suggestion: How to fix it
//   - WrappedErr: The underlying error, returned by Unwrap
//
// Error() joins the non-empty parts with newlines. Example error message:
//
//	Invalid target: 'exam ple.com'
//	Details: Could not resolve or parse the target address
//	Try: Check the hostname/IP is correct. Examples: '192.168.1.1', 'example.com', '10.0.0.0/24'
//	(Error: invalid character ' ' in hostname)
//
// Constructors:
//
// The package includes common error constructors:
//   - InvalidPortError: Invalid port specification
//   - NoTargetError: No target given
//   - InvalidTargetError: Target that cannot be parsed or resolved
//   - InvalidTargetListError: Target list that produced no scan target
//   - ConfigLoadError: Config file that cannot be read
//   - RateLimitError: Rate above the safe maximum
//   - NetworkError, PermissionError, TimeoutError
//
// Integration:
//
// These errors implement the standard error interface, so they work seamlessly
// with Go's error handling:
//
//	if err != nil {
//	    if userErr, ok := err.(*errors.UserError); ok {
//	        fmt.Fprintf(os.Stderr, "Error: %s\n", userErr.Message)
//	        fmt.Fprintf(os.Stderr, "Details: %s\n", userErr.Details)
//	        fmt.Fprintf(os.Stderr, "Suggestion: %s\n", userErr.Suggestion)
//	    }
//	    return err
//	}
package errors
