package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/postventa/garantias-api/internal/application/auth"
	"github.com/postventa/garantias-api/internal/application/dto"
	"github.com/postventa/garantias-api/internal/domain"
	"github.com/postventa/garantias-api/internal/domain/entity"
	"github.com/postventa/garantias-api/internal/domain/repository"
	"github.com/postventa/garantias-api/internal/domain/role"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase gestión de usuarios del flujo admin: alta con roles arbitrarios,
// mutación del conjunto de roles y baja. La ruta ya viene protegida por la
// puerta de rol admin; aquí solo quedan las reglas de negocio.
type UserUseCase struct {
	userRepo       repository.UserRepository
	fabricanteRepo repository.FabricanteRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, fabricanteRepo repository.FabricanteRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, fabricanteRepo: fabricanteRepo}
}

// Create crea un usuario con el conjunto de roles indicado.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	roles := role.FromStrings(in.Roles)
	if !roles.Valida() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nombre:       in.Nombre,
		Roles:        roles,
		Estado:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza nombre/estado de un usuario.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		user.Nombre = *in.Nombre
	}
	if in.Estado != nil {
		user.Estado = *in.Estado
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// UpdateRoles reemplaza el conjunto de roles. El conjunto resultante debe ser
// no vacío y dentro del conjunto cerrado.
func (uc *UserUseCase) UpdateRoles(ctx context.Context, id string, in dto.UpdateRolesRequest) (*dto.UserResponse, error) {
	roles := role.FromStrings(in.Roles)
	if !roles.Valida() {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := uc.userRepo.UpdateRoles(ctx, id, roles); err != nil {
		return nil, err
	}
	user.Roles = roles
	user.UpdatedAt = time.Now()
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario. Se bloquea mientras sea representante legal de
// algún fabricante (ErrEnUso): primero debe transferirse la titularidad.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	enUso, err := uc.fabricanteRepo.ExistePorApoderado(ctx, id)
	if err != nil {
		return err
	}
	if enUso {
		return domain.ErrEnUso
	}
	return uc.userRepo.Delete(ctx, id)
}
