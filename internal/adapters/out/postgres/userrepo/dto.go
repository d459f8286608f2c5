// Package userrepo persists user aggregates with GORM.
package userrepo

import (
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the database row behind one user aggregate. Email carries a
// unique index so duplicate registration fails at the database even under
// concurrent signups.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255)"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex"`
	Phone     string    `gorm:"type:varchar(64)"`
	Role      int
	Rating    float64
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:        aggregate.ID().Value(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		Phone:     aggregate.Phone(),
		Role:      int(aggregate.Role()),
		Rating:    aggregate.Rating(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.Phone,
		user.Role(dto.Role), dto.Rating, dto.CreatedAt)
}
