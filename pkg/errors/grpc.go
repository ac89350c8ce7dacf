package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
)

type GRPCError struct {
	Code     string
	Message  string
	GrpcCode codes.Code
}

func NewGRPCError(code string, message string, grpcCode codes.Code) *GRPCError {
	return &GRPCError{
		Code:     code,
		Message:  message,
		GrpcCode: grpcCode,
	}
}

func (e GRPCError) Error() string {
	return fmt.Sprintf("%s - %s", e.Code, e.Message)
}
