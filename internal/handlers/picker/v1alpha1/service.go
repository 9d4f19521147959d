// Package v1alpha1 exposes the picker over gRPC. Messages travel as
// google.protobuf.Struct so the service needs no generated stubs.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "picker.v1alpha1.PickerService"

// Method names
const (
	MethodDraw            = "Draw"
	MethodPreview         = "Preview"
	MethodReset           = "Reset"
	MethodSetMode         = "SetMode"
	MethodSetLeaveList    = "SetLeaveList"
	MethodGetLeaveList    = "GetLeaveList"
	MethodSetEggsEnabled  = "SetEggsEnabled"
	MethodSetVoiceEnabled = "SetVoiceEnabled"
	MethodReseed          = "Reseed"
	MethodReload          = "Reload"
	MethodGetStatus       = "GetStatus"
	MethodListHistory     = "ListHistory"
	MethodClearHistory    = "ClearHistory"
)

// FullMethod returns the invoke path for a method name
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// PickerServiceServer is the server API for the picker service
type PickerServiceServer interface {
	Draw(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Preview(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Reset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SetMode(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SetLeaveList(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetLeaveList(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SetEggsEnabled(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SetVoiceEnabled(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Reseed(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Reload(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListHistory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ClearHistory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type serverMethod func(srv PickerServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

// unary adapts a server method to grpc.MethodHandler, running it through the
// interceptor chain when one is installed
func unary(method string, call serverMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PickerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PickerServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc describes the picker service for grpc.Server.RegisterService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PickerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodDraw, Handler: unary(MethodDraw, PickerServiceServer.Draw)},
		{MethodName: MethodPreview, Handler: unary(MethodPreview, PickerServiceServer.Preview)},
		{MethodName: MethodReset, Handler: unary(MethodReset, PickerServiceServer.Reset)},
		{MethodName: MethodSetMode, Handler: unary(MethodSetMode, PickerServiceServer.SetMode)},
		{MethodName: MethodSetLeaveList, Handler: unary(MethodSetLeaveList, PickerServiceServer.SetLeaveList)},
		{MethodName: MethodGetLeaveList, Handler: unary(MethodGetLeaveList, PickerServiceServer.GetLeaveList)},
		{MethodName: MethodSetEggsEnabled, Handler: unary(MethodSetEggsEnabled, PickerServiceServer.SetEggsEnabled)},
		{MethodName: MethodSetVoiceEnabled, Handler: unary(MethodSetVoiceEnabled, PickerServiceServer.SetVoiceEnabled)},
		{MethodName: MethodReseed, Handler: unary(MethodReseed, PickerServiceServer.Reseed)},
		{MethodName: MethodReload, Handler: unary(MethodReload, PickerServiceServer.Reload)},
		{MethodName: MethodGetStatus, Handler: unary(MethodGetStatus, PickerServiceServer.GetStatus)},
		{MethodName: MethodListHistory, Handler: unary(MethodListHistory, PickerServiceServer.ListHistory)},
		{MethodName: MethodClearHistory, Handler: unary(MethodClearHistory, PickerServiceServer.ClearHistory)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "picker/v1alpha1/picker.proto",
}

// RegisterPickerServiceServer registers the handler with a gRPC server
func RegisterPickerServiceServer(s grpc.ServiceRegistrar, srv PickerServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
