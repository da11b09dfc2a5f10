package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified name of the converter service
const ServiceName = "unitflow.v1.ConverterService"

// Method names of the converter service
const (
	MethodConvert        = "Convert"
	MethodListSections   = "ListSections"
	MethodListUnits      = "ListUnits"
	MethodAddFavorite    = "AddFavorite"
	MethodListFavorites  = "ListFavorites"
	MethodRemoveFavorite = "RemoveFavorite"
	MethodRefreshRates   = "RefreshRates"
	MethodGetRates       = "GetRates"
)

// FullMethod returns the "/service/method" path used in interceptors and metadata
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// ConverterServiceServer is the server API for the converter service
// Requests and responses are google.protobuf.Struct messages.
type ConverterServiceServer interface {
	Convert(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListSections(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListUnits(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddFavorite(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListFavorites(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveFavorite(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RefreshRates(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRates(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(ConverterServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// ConverterServiceDesc describes the converter service for grpc.Server.RegisterService
var ConverterServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ConverterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodConvert, Handler: unaryHandler(MethodConvert, ConverterServiceServer.Convert)},
		{MethodName: MethodListSections, Handler: unaryHandler(MethodListSections, ConverterServiceServer.ListSections)},
		{MethodName: MethodListUnits, Handler: unaryHandler(MethodListUnits, ConverterServiceServer.ListUnits)},
		{MethodName: MethodAddFavorite, Handler: unaryHandler(MethodAddFavorite, ConverterServiceServer.AddFavorite)},
		{MethodName: MethodListFavorites, Handler: unaryHandler(MethodListFavorites, ConverterServiceServer.ListFavorites)},
		{MethodName: MethodRemoveFavorite, Handler: unaryHandler(MethodRemoveFavorite, ConverterServiceServer.RemoveFavorite)},
		{MethodName: MethodRefreshRates, Handler: unaryHandler(MethodRefreshRates, ConverterServiceServer.RefreshRates)},
		{MethodName: MethodGetRates, Handler: unaryHandler(MethodGetRates, ConverterServiceServer.GetRates)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "unitflow/v1/converter.proto",
}

// RegisterConverterServiceServer registers the converter service on a gRPC server
func RegisterConverterServiceServer(s grpc.ServiceRegistrar, srv ConverterServiceServer) {
	s.RegisterService(&ConverterServiceDesc, srv)
}

func unaryHandler(method string, call unaryMethod) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ConverterServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ConverterServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ConverterClient is a client for the converter service
type ConverterClient struct {
	cc grpc.ClientConnInterface
}

// NewConverterClient creates a client over an existing connection
func NewConverterClient(cc grpc.ClientConnInterface) *ConverterClient {
	return &ConverterClient{cc: cc}
}

func (c *ConverterClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ConverterClient) Convert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodConvert, in, opts...)
}

func (c *ConverterClient) ListSections(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListSections, in, opts...)
}

func (c *ConverterClient) ListUnits(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListUnits, in, opts...)
}

func (c *ConverterClient) AddFavorite(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodAddFavorite, in, opts...)
}

func (c *ConverterClient) ListFavorites(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListFavorites, in, opts...)
}

func (c *ConverterClient) RemoveFavorite(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodRemoveFavorite, in, opts...)
}

func (c *ConverterClient) RefreshRates(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodRefreshRates, in, opts...)
}

func (c *ConverterClient) GetRates(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetRates, in, opts...)
}
