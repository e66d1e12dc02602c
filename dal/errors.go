package dal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// ErrConditionFailed is returned when a conditional write did not match the stored item
var ErrConditionFailed = errors.New("conditional check failed")

func errorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// IsNotFound reports whether err means the table or item does not exist
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if code := errorCode(err); code != "" {
		return code == "ResourceNotFoundException"
	}
	msg := err.Error()
	return strings.Contains(msg, "ResourceNotFoundException") ||
		strings.Contains(msg, "Requested resource not found")
}

// IsConditionalCheckFailed reports whether a conditional write was rejected
func IsConditionalCheckFailed(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConditionFailed) {
		return true
	}
	return errorCode(err) == "ConditionalCheckFailedException"
}

// IsThrottled reports whether DynamoDB rejected the call for capacity reasons
func IsThrottled(err error) bool {
	switch errorCode(err) {
	case "ProvisionedThroughputExceededException", "ThrottlingException", "RequestLimitExceeded":
		return true
	}
	return false
}

// ConditionError reports which write of a cancelled transaction failed its condition
type ConditionError struct {
	Index int
}

func (e *ConditionError) Error() string {
	return fmt.Sprintf("transaction write %d: %v", e.Index, ErrConditionFailed)
}

func (e *ConditionError) Unwrap() error {
	return ErrConditionFailed
}

// FailedWrite returns the index of the write whose condition cancelled the
// transaction, or -1
func FailedWrite(err error) int {
	var condErr *ConditionError
	if errors.As(err, &condErr) {
		return condErr.Index
	}
	return -1
}

func conditionError(err error) error {
	var canceled *types.TransactionCanceledException
	if !errors.As(err, &canceled) {
		return nil
	}
	for i, reason := range canceled.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return &ConditionError{Index: i}
		}
	}
	return nil
}

// RetryableTransaction reports whether a failed transaction may succeed when resent
func RetryableTransaction(err error) bool {
	if IsThrottled(err) || errorCode(err) == "TransactionInProgressException" {
		return true
	}
	var canceled *types.TransactionCanceledException
	if !errors.As(err, &canceled) {
		return false
	}
	for _, reason := range canceled.CancellationReasons {
		switch aws.ToString(reason.Code) {
		case "TransactionConflict", "ThrottlingError", "ProvisionedThroughputExceeded":
			return true
		}
	}
	return false
}
