package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"copydesk/internal/domain/entities"
	"copydesk/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrOrderNotAwaitingPayment    = errors.New("order not awaiting payment")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase encapsulates the payment-confirmation collaborator flow:
// charge through the provider, persist the payment record, and drive the
// payment_pending to payment_confirmed order transition.

type IPaymentUseCase interface {
	CreateAndConfirm(ctx context.Context, orderID string, providerPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	orderRepo interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
	notifier  interfaces.INotificationDispatcher
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, orderRepo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, notifier interfaces.INotificationDispatcher) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway, notifier: notifier}
}

func (u *PaymentUseCase) CreateAndConfirm(ctx context.Context, orderID string, providerPayload json.RawMessage) (entities.Payment, error) {
	log.Printf("[payment][usecase] create-and-confirm start order_id=%q payload_len=%d", orderID, len(providerPayload))
	mockMode := isPaymentGatewayMockEnabled()
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Payment{}, ErrInvalidOrderID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload order_id=%s", orderID)
			return entities.Payment{}, ErrInvalidPaymentPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	o, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if o.ID == "" {
		return entities.Payment{}, ErrOrderNotFound
	}
	if o.Status != entities.OrderStatusPaymentPending {
		log.Printf("[payment][usecase] order not awaiting payment order_id=%s status=%s", orderID, o.Status)
		return entities.Payment{}, ErrOrderNotAwaitingPayment
	}

	// The order record is the source of truth for the amount; the reference
	// helps the provider reconcile events back to the order.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = orderID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Order %s", orderID)
		}
		reqMap["transaction_amount"] = float64(o.AmountCents) / 100
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed order_id=%s err=%v", orderID, err)
		if isGatewayUnauthorized(err) {
			return entities.Payment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Payment{}, ErrPaymentGatewayBadRequest
		}
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment gateway success order_id=%s provider_payment_id=%s provider_status=%s", orderID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed order_id=%s err=%v", orderID, err)
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		OrderID:            orderID,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}

	updated, err := u.orderRepo.UpdateStatus(ctx, orderID, entities.OrderStatusPaymentPending, entities.OrderStatusPaymentConfirmed)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		// Payment is recorded; the order moved underneath us (e.g. cancelled).
		log.Printf("[payment][usecase] confirm transition lost the race order_id=%s payment_id=%s", orderID, created.ID)
		return entities.Payment{}, ErrTransitionConflict
	}
	if u.notifier != nil {
		if err := u.notifier.OrderStatusChanged(ctx, updated, entities.OrderStatusPaymentPending); err != nil {
			log.Printf("[payment][usecase] notification dispatch failed order_id=%s err=%v", orderID, err)
		}
	}

	log.Printf("[payment][usecase] create-and-confirm success order_id=%s payment_id=%s", orderID, created.ID)
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
