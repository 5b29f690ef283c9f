package usecase

import (
	"context"
	"fmt"

	"github.com/invorya/stockscan-api/internal/domain"
	"github.com/invorya/stockscan-api/internal/domain/entity"
	"github.com/invorya/stockscan-api/internal/domain/repository"
)

// UserUseCase operaciones administrativas sobre usuarios (listado y consulta).
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List devuelve todos los usuarios registrados.
func (uc *UserUseCase) List(ctx context.Context) ([]*entity.User, error) {
	list, err := uc.users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	return list, nil
}

// GetByID devuelve un usuario por ID o domain.ErrUserNotFound.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
