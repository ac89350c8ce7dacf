package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

type cleanupFunc func()

// StructClient invokes unary methods whose request and response are google.protobuf.Struct.
type StructClient struct {
	conn    *grpc.ClientConn
	service string
}

func NewStructClient(addr, service string, opts ...grpc.DialOption) (*StructClient, cleanupFunc, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("grpc client for %s: %w", addr, err)
	}

	return &StructClient{conn: conn, service: service}, func() { conn.Close() }, nil
}

func (c *StructClient) Call(ctx context.Context, method string, req map[string]any) (map[string]any, error) {
	in, err := structpb.NewStruct(req)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, "/"+c.service+"/"+method, in, out); err != nil {
		return nil, err
	}
	return out.AsMap(), nil
}
