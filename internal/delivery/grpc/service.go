package grpc

import (
	"context"
	"fmt"
	"strings"

	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/internal/service"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
	"github.com/vogiaan1904/barberqueue/pkg/util"
	"google.golang.org/protobuf/types/known/structpb"
)

type grpcService struct {
	svc   service.QueueService
	clock util.Clock
	l     logger.Logger
}

func NewGrpcService(svc service.QueueService, clock util.Clock, l logger.Logger) QueueServiceServer {
	return &grpcService{
		svc:   svc,
		clock: clock,
		l:     l,
	}
}

func (s *grpcService) EnterQueue(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in enterQueueRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, s.fail(ctx, MethodEnterQueue, err)
	}

	out, err := s.svc.EnterQueue(ctx, service.EnterQueueInput{
		BarbershopID:      in.BarbershopID,
		ClientName:        in.ClientName,
		ClientPhone:       in.ClientPhone,
		RequestedBarberID: in.RequestedBarberID,
	})
	if err != nil {
		return nil, s.fail(ctx, MethodEnterQueue, err)
	}

	return s.reply(ctx, MethodEnterQueue, out)
}

func (s *grpcService) GetStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in tokenRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, s.fail(ctx, MethodGetStatus, err)
	}

	out, err := s.svc.GetStatusByToken(ctx, in.Token)
	if err != nil {
		return nil, s.fail(ctx, MethodGetStatus, err)
	}

	return s.reply(ctx, MethodGetStatus, out)
}

func (s *grpcService) LeaveQueue(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in tokenRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, s.fail(ctx, MethodLeaveQueue, err)
	}

	if err := s.svc.LeaveQueue(ctx, in.Token); err != nil {
		return nil, s.fail(ctx, MethodLeaveQueue, err)
	}

	return s.reply(ctx, MethodLeaveQueue, map[string]any{"message": "Queue left successfully"})
}

func (s *grpcService) CallNext(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in barberRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, s.fail(ctx, MethodCallNext, err)
	}

	e, err := s.svc.CallNext(ctx, in.BarbershopID, in.BarberID)
	if err != nil {
		return nil, s.fail(ctx, MethodCallNext, err)
	}

	return s.reply(ctx, MethodCallNext, e)
}

func (s *grpcService) StartService(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in entryActionRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, s.fail(ctx, MethodStartService, err)
	}

	e, err := s.svc.StartService(ctx, in.EntryID, in.BarberID)
	if err != nil {
		return nil, s.fail(ctx, MethodStartService, err)
	}

	return s.reply(ctx, MethodStartService, e)
}

func (s *grpcService) FinishService(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in entryActionRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, s.fail(ctx, MethodFinishService, err)
	}

	e, err := s.svc.FinishService(ctx, in.EntryID, in.BarberID, in.Notes)
	if err != nil {
		return nil, s.fail(ctx, MethodFinishService, err)
	}

	return s.reply(ctx, MethodFinishService, e)
}

func (s *grpcService) NoShow(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in entryActionRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, s.fail(ctx, MethodNoShow, err)
	}

	e, err := s.svc.NoShow(ctx, in.EntryID, in.BarberID)
	if err != nil {
		return nil, s.fail(ctx, MethodNoShow, err)
	}

	return s.reply(ctx, MethodNoShow, e)
}

func (s *grpcService) RemoveEntry(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in removeEntryRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, s.fail(ctx, MethodRemoveEntry, err)
	}

	e, err := s.svc.RemoveEntry(ctx, in.EntryID, models.ActorRole(strings.ToLower(in.ActorRole)))
	if err != nil {
		return nil, s.fail(ctx, MethodRemoveEntry, err)
	}

	return s.reply(ctx, MethodRemoveEntry, e)
}

func (s *grpcService) SetBarberActive(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in setBarberActiveRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, s.fail(ctx, MethodSetBarberActive, err)
	}

	input := service.SetBarberActiveInput{
		BarberID:     in.BarberID,
		BarbershopID: in.BarbershopID,
		Active:       in.Active,
	}
	if err := s.svc.SetBarberActive(ctx, input); err != nil {
		return nil, s.fail(ctx, MethodSetBarberActive, err)
	}

	return s.reply(ctx, MethodSetBarberActive, input)
}

func (s *grpcService) ListActiveQueue(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listActiveQueueRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, s.fail(ctx, MethodListActiveQueue, err)
	}

	status, err := service.ParseStatusFilter(in.Status)
	if err != nil {
		return nil, s.fail(ctx, MethodListActiveQueue, err)
	}

	out, err := s.svc.ListActiveQueue(ctx, in.BarbershopID, in.Viewer, status)
	if err != nil {
		return nil, s.fail(ctx, MethodListActiveQueue, err)
	}

	return s.reply(ctx, MethodListActiveQueue, out)
}

func (s *grpcService) GetStats(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in statsRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, s.fail(ctx, MethodGetStats, err)
	}

	now := s.clock.Now()
	from, err := util.ParseTimeOr(in.From, util.StartOfDay(now))
	if err != nil {
		return nil, s.fail(ctx, MethodGetStats, fmt.Errorf("%w: from: %v", qerrors.ErrInvalidInput, err))
	}
	to, err := util.ParseTimeOr(in.To, now)
	if err != nil {
		return nil, s.fail(ctx, MethodGetStats, fmt.Errorf("%w: to: %v", qerrors.ErrInvalidInput, err))
	}

	out, err := s.svc.GetStats(ctx, in.BarbershopID, from, to)
	if err != nil {
		return nil, s.fail(ctx, MethodGetStats, err)
	}

	return s.reply(ctx, MethodGetStats, out)
}

func (s *grpcService) GetBarberCurrent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in barberRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, s.fail(ctx, MethodGetBarberCurrent, err)
	}

	e, err := s.svc.GetBarberCurrent(ctx, in.BarbershopID, in.BarberID)
	if err != nil {
		return nil, s.fail(ctx, MethodGetBarberCurrent, err)
	}

	return s.reply(ctx, MethodGetBarberCurrent, e)
}

func (s *grpcService) ConfigureShop(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in service.ConfigureShopInput
	if err := fromStruct(req, &in); err != nil {
		return nil, s.fail(ctx, MethodConfigureShop, err)
	}

	if err := s.svc.ConfigureShop(ctx, in); err != nil {
		return nil, s.fail(ctx, MethodConfigureShop, err)
	}

	return s.reply(ctx, MethodConfigureShop, in)
}

func (s *grpcService) fail(ctx context.Context, method string, err error) error {
	if !qerrors.IsExpected(err) {
		s.l.Errorf(ctx, "delivery.grpc.%s: %v", method, err)
	}
	return mapGRPCError(err)
}

func (s *grpcService) reply(ctx context.Context, method string, v any) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		s.l.Errorf(ctx, "delivery.grpc.%s: encode response: %v", method, err)
		return nil, mapGRPCError(err)
	}
	return out, nil
}
