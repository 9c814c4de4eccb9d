package transaction

import (
	"context"
	"database/sql"
	"time"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/bus"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate moq -out service_mocks.go . IService
//go:generate otelwrap --out service_wrappers.go . IService

// IService ...
type IService interface {
	Register(ctx context.Context, input RegisterInput) (string, error)
}

// RegisterInput is a sell or return document reported by a point of sale
type RegisterInput struct {
	DocumentNumber string             `yaml:"documentNumber" validate:"required"`
	DocumentType   model.DocumentType `yaml:"documentType" validate:"oneof=1 2"`
	PurchaseDate   time.Time          `yaml:"purchaseDate" validate:"required"`
	PurchasePlace  string             `yaml:"purchasePlace"`
	PosID          string             `yaml:"posId"`
	CustomerData   model.CustomerData `yaml:"customerData"`
	Items          []ItemInput        `yaml:"items" validate:"required,min=1,dive"`
}

// ItemInput ...
type ItemInput struct {
	SKU        string          `yaml:"sku" validate:"required"`
	Name       string          `yaml:"name" validate:"required"`
	Quantity   decimal.Decimal `yaml:"quantity"`
	GrossValue decimal.Decimal `yaml:"grossValue"`
	Category   string          `yaml:"category"`
	Maker      string          `yaml:"maker"`
	Labels     model.Labels    `yaml:"labels"`
}

// Service registers transactions, assignment to customers happens in the listeners
type Service struct {
	provider  repository.Provider
	repo      repository.TransactionRepo
	publisher bus.EventPublisher
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider, repo repository.TransactionRepo, publisher bus.EventPublisher,
) *Service {
	return &Service{
		provider:  provider,
		repo:      repo,
		publisher: publisher,
	}
}

func (in RegisterInput) toTransaction(id string) model.Transaction {
	items := make([]model.TransactionItem, 0, len(in.Items))
	for i, item := range in.Items {
		items = append(items, model.TransactionItem{
			TransactionID: id,
			LineNo:        i + 1,
			SKU:           item.SKU,
			Name:          item.Name,
			Quantity:      item.Quantity,
			GrossValue:    item.GrossValue,
			Category:      item.Category,
			Maker:         item.Maker,
			Labels:        item.Labels,
		})
	}

	return model.Transaction{
		ID:             id,
		DocumentNumber: in.DocumentNumber,
		DocumentType:   in.DocumentType,
		PurchaseDate:   in.PurchaseDate,
		PurchasePlace:  in.PurchasePlace,
		PosID: sql.NullString{
			Valid:  in.PosID != "",
			String: in.PosID,
		},
		Items: items,
	}
}

// Register stores the transaction then publishes TransactionRegistered, returns the new transaction id
func (s *Service) Register(ctx context.Context, input RegisterInput) (string, error) {
	if err := bus.ValidateStruct(input); err != nil {
		return "", err
	}

	id := uuid.New().String()
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.repo.InsertTransaction(ctx, input.toTransaction(id))
	})
	if err != nil {
		return "", err
	}

	err = s.publisher.Publish(ctx, model.TransactionRegistered{
		TransactionID: id,
		CustomerData:  input.CustomerData,
	})
	return id, err
}
