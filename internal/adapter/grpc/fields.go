package grpc

import (
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/unitflow-backend/internal/domain"
)

// stringField returns a string field of the request, or "" if it is absent
func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

// boolField returns a bool field of the request, or false if it is absent
func boolField(req *structpb.Struct, name string) bool {
	return req.GetFields()[name].GetBoolValue()
}

// decimalField parses a decimal field of the request
// Decimals must be sent as strings: a JSON number has already lost precision.
func decimalField(req *structpb.Struct, name string) (decimal.Decimal, error) {
	field, ok := req.GetFields()[name]
	if !ok {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	if _, isString := field.GetKind().(*structpb.Value_StringValue); !isString {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "%s must be a decimal string", name)
	}

	value, err := domain.ParseValue(field.GetStringValue())
	if err != nil {
		return decimal.Zero, mapError(err)
	}
	return value, nil
}
