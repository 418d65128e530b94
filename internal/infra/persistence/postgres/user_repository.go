// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	"taskman/internal/infra/persistence/model"
	"taskman/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface on the generated query builder.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{q: query.Use(db)}
}

// FindByEmail retrieves a single user by email. Credential reads always hit the primary
// so a code written a moment ago is visible to the next step of the flow.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).
		WriteDB().
		Where(u.Email.Eq(email)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// ExistsByEmail reports whether an account is registered under email.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u := repo.q.UserModel
	count, err := u.WithContext(ctx).
		WriteDB().
		Where(u.Email.Eq(email)).
		Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to check user email")
	}

	return count > 0, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("user violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateConfirmationCode replaces the active code and its issue time.
func (repo *userRepository) UpdateConfirmationCode(ctx context.Context, email, code string, sentAt time.Time) error {
	u := repo.q.UserModel

	return repo.updateByEmail(ctx, email, map[string]any{
		u.ConfirmationCode.ColumnName().String(): code,
		u.CodeSentAt.ColumnName().String():       sentAt,
	}, "failed to update confirmation code")
}

// MarkVerified sets the verification flag and clears the active code.
func (repo *userRepository) MarkVerified(ctx context.Context, email string) error {
	u := repo.q.UserModel

	return repo.updateByEmail(ctx, email, map[string]any{
		u.IsVerified.ColumnName().String():       true,
		u.ConfirmationCode.ColumnName().String(): nil,
		u.CodeSentAt.ColumnName().String():       nil,
	}, "failed to mark user verified")
}

// UpdatePassword stores a new password hash and clears the active code.
func (repo *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	u := repo.q.UserModel

	return repo.updateByEmail(ctx, email, map[string]any{
		u.PasswordHash.ColumnName().String():     passwordHash,
		u.ConfirmationCode.ColumnName().String(): nil,
		u.CodeSentAt.ColumnName().String():       nil,
	}, "failed to update password")
}

// DeleteUnverifiedOlderThan removes unverified accounts registered before cutoff.
// Accounts already assigned as a task executor are kept.
func (repo *userRepository) DeleteUnverifiedOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	u, t := repo.q.UserModel, repo.q.TaskModel

	assigned := t.WithContext(ctx).
		Select(t.ID).
		Where(t.ExecutorID.EqCol(u.ID))

	result, err := u.WithContext(ctx).
		Where(u.IsVerified.Is(false), u.CreatedAt.Lt(cutoff)).
		Not(gen.Exists(assigned)).
		Delete()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete unverified users")
	}

	return result.RowsAffected, nil
}

// updateByEmail applies one column set in a single UPDATE statement.
func (repo *userRepository) updateByEmail(ctx context.Context, email string, columns map[string]any, details string) error {
	u := repo.q.UserModel
	result, err := u.WithContext(ctx).
		Where(u.Email.Eq(email)).
		Updates(columns)
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("user violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, details)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:               data.ID,
		Email:            data.Email,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		PasswordHash:     data.PasswordHash,
		Role:             entity.RoleFromString(data.Role),
		IsVerified:       data.IsVerified,
		ConfirmationCode: data.ConfirmationCode,
		CodeSentAt:       data.CodeSentAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:               data.ID,
		Email:            data.Email,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		PasswordHash:     data.PasswordHash,
		Role:             data.Role.String(),
		IsVerified:       data.IsVerified,
		ConfirmationCode: data.ConfirmationCode,
		CodeSentAt:       data.CodeSentAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
