package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/domain"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/repository"
)

// CommentUseCase casos de uso de notas sobre prospectos.
type CommentUseCase struct {
	comments  repository.CustomerCommentRepository
	customers repository.CustomerRepository
}

// NewCommentUseCase construye el caso de uso.
func NewCommentUseCase(comments repository.CustomerCommentRepository, customers repository.CustomerRepository) *CommentUseCase {
	return &CommentUseCase{comments: comments, customers: customers}
}

// Create agrega una nota a un prospecto existente; el autor es el usuario del token.
func (uc *CommentUseCase) Create(customerID, authorID string, in dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if strings.TrimSpace(in.Comment) == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.IsRemoved {
		return nil, domain.ErrNotFound
	}
	comment := &entity.CustomerComment{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		AuthorID:   authorID,
		Comment:    strings.TrimSpace(in.Comment),
		Lifecycle:  entity.NewLifecycle(),
	}
	if err := uc.comments.Create(comment); err != nil {
		return nil, err
	}
	resp := dto.NewCommentResponse(comment)
	return &resp, nil
}

// ListByCustomer devuelve las notas activas de un prospecto.
func (uc *CommentUseCase) ListByCustomer(customerID string) ([]dto.CommentResponse, error) {
	list, err := uc.comments.ListActiveByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CommentResponse, 0, len(list))
	for _, cm := range list {
		items = append(items, dto.NewCommentResponse(cm))
	}
	return items, nil
}
