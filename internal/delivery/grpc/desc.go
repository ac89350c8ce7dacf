package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name. Requests and responses
// are google.protobuf.Struct documents whose fields mirror the HTTP JSON bodies.
const ServiceName = "barberqueue.v1.QueueService"

const (
	MethodEnterQueue       = "EnterQueue"
	MethodGetStatus        = "GetStatus"
	MethodLeaveQueue       = "LeaveQueue"
	MethodCallNext         = "CallNext"
	MethodStartService     = "StartService"
	MethodFinishService    = "FinishService"
	MethodNoShow           = "NoShow"
	MethodRemoveEntry      = "RemoveEntry"
	MethodSetBarberActive  = "SetBarberActive"
	MethodListActiveQueue  = "ListActiveQueue"
	MethodGetStats         = "GetStats"
	MethodGetBarberCurrent = "GetBarberCurrent"
	MethodConfigureShop    = "ConfigureShop"
)

// FullMethod returns the path a client invokes for method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

type QueueServiceServer interface {
	EnterQueue(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	LeaveQueue(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CallNext(context.Context, *structpb.Struct) (*structpb.Struct, error)
	StartService(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FinishService(context.Context, *structpb.Struct) (*structpb.Struct, error)
	NoShow(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveEntry(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetBarberActive(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListActiveQueue(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBarberCurrent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ConfigureShop(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryFunc func(QueueServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func method(name string, call unaryFunc) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(QueueServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(QueueServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var QueueServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*QueueServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method(MethodEnterQueue, QueueServiceServer.EnterQueue),
		method(MethodGetStatus, QueueServiceServer.GetStatus),
		method(MethodLeaveQueue, QueueServiceServer.LeaveQueue),
		method(MethodCallNext, QueueServiceServer.CallNext),
		method(MethodStartService, QueueServiceServer.StartService),
		method(MethodFinishService, QueueServiceServer.FinishService),
		method(MethodNoShow, QueueServiceServer.NoShow),
		method(MethodRemoveEntry, QueueServiceServer.RemoveEntry),
		method(MethodSetBarberActive, QueueServiceServer.SetBarberActive),
		method(MethodListActiveQueue, QueueServiceServer.ListActiveQueue),
		method(MethodGetStats, QueueServiceServer.GetStats),
		method(MethodGetBarberCurrent, QueueServiceServer.GetBarberCurrent),
		method(MethodConfigureShop, QueueServiceServer.ConfigureShop),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "barberqueue/v1/queue.proto",
}

func RegisterQueueServiceServer(s grpc.ServiceRegistrar, srv QueueServiceServer) {
	s.RegisterService(&QueueServiceDesc, srv)
}
