package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/reach-summit/summit-api/internal/registration"
	"github.com/reach-summit/summit-api/internal/service"
)

// RegistrationService is the part of service.Service used by the handlers.
type RegistrationService interface {
	SubmitIndividual(ctx context.Context, in registration.IndividualInput) (service.IndividualReceipt, error)
	SubmitGroup(ctx context.Context, in registration.GroupInput) (service.GroupReceipt, error)
	ListIndividuals(ctx context.Context) ([]registration.IndividualRecord, error)
	ListGroups(ctx context.Context) ([]registration.GroupRecord, error)
}

type RegistrationHandler struct {
	svc RegistrationService
	log *zap.Logger
}

func NewRegistrationHandler(svc RegistrationService, log *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{svc: svc, log: log}
}

type IndividualRequest struct {
	Body registration.IndividualInput
}

type IndividualResponse struct {
	Body struct {
		Success bool `json:"success"`
		service.IndividualReceipt
	}
}

func (h *RegistrationHandler) HandleIndividual(ctx context.Context, input *IndividualRequest) (*IndividualResponse, error) {
	receipt, err := h.svc.SubmitIndividual(ctx, input.Body)
	if err != nil {
		return nil, toHTTPError(h.log, err)
	}

	res := &IndividualResponse{}
	res.Body.Success = true
	res.Body.IndividualReceipt = receipt
	return res, nil
}

type GroupRequest struct {
	Body registration.GroupInput
}

type GroupResponse struct {
	Body struct {
		Success bool `json:"success"`
		service.GroupReceipt
	}
}

func (h *RegistrationHandler) HandleGroup(ctx context.Context, input *GroupRequest) (*GroupResponse, error) {
	receipt, err := h.svc.SubmitGroup(ctx, input.Body)
	if err != nil {
		return nil, toHTTPError(h.log, err)
	}

	res := &GroupResponse{}
	res.Body.Success = true
	res.Body.GroupReceipt = receipt
	return res, nil
}
