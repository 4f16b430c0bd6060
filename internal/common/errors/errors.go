// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeAnswerInvalid    ErrorCode = "ANSWER_INVALID"
	ErrCodeQuestionNotFound ErrorCode = "QUESTION_NOT_FOUND"
	ErrCodeStageUnknown     ErrorCode = "STAGE_UNKNOWN"

	ErrCodeScoreStoreFailed ErrorCode = "SCORE_STORE_FAILED"
	ErrCodeParseError       ErrorCode = "PARSE_ERROR"

	ErrCodeReportSendFailed ErrorCode = "REPORT_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewAnswerInvalidError creates a non-retryable answer validation error.
func NewAnswerInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAnswerInvalid,
		Message:   "Answer is not a declared option for the question",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewQuestionNotFoundError creates a non-retryable lookup error.
func NewQuestionNotFoundError(stage, questionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQuestionNotFound,
		Message:   "Question not found in stage bank",
		Details:   fmt.Sprintf("stage: %s, questionId: %s", stage, questionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStageUnknownError creates a non-retryable stage validation error.
func NewStageUnknownError(stage string) *StandardError {
	return &StandardError{
		Code:      ErrCodeStageUnknown,
		Message:   "Unknown assessment stage",
		Details:   fmt.Sprintf("stage: %s", stage),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewScoreStoreFailedError creates a retryable store access error.
func NewScoreStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeScoreStoreFailed,
		Message:   "Score store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewParseError creates a non-retryable payload parsing error.
func NewParseError(what string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeParseError,
		Message:   fmt.Sprintf("Failed to parse %s", what),
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReportSendFailedError creates a retryable report delivery error.
func NewReportSendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportSendFailed,
		Message:   "Report delivery failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewBusinessRuleError(message, details string) *StandardError {
	return &StandardError{
		Code:      "BUSINESS_RULE_VIOLATION",
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewResourceNotFoundError(service, details string) *StandardError {
	return &StandardError{
		Code:      "RESOURCE_NOT_FOUND",
		Message:   fmt.Sprintf("Resource not found in %s", service),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewAuthenticationError(details string) *StandardError {
	return &StandardError{
		Code:      "AUTHENTICATION_ERROR",
		Message:   "Authentication failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes (identical today).
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeAnswerInvalid:    "ANSWER_INVALID",
	ErrCodeQuestionNotFound: "QUESTION_NOT_FOUND",
	ErrCodeStageUnknown:     "STAGE_UNKNOWN",
	ErrCodeScoreStoreFailed: "SCORE_STORE_FAILED",
	ErrCodeParseError:       "PARSE_ERROR",
	ErrCodeReportSendFailed: "REPORT_SEND_FAILED",
}

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeScoreStoreFailed,
		ErrCodeReportSendFailed:
		return 3 // Retryable technical errors

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code) // Fallback
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "ANSWER") || strings.Contains(codeStr, "QUESTION") || strings.Contains(codeStr, "STAGE"):
		return "VALIDATION"
	case strings.Contains(codeStr, "STORE") || strings.Contains(codeStr, "PARSE"):
		return "STORE"
	case strings.Contains(codeStr, "REPORT"):
		return "DELIVERY"
	default:
		return "OTHER"
	}
}
