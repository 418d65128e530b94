package postgres

import (
	"context"

	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	"taskman/internal/infra/persistence/model"
	"taskman/internal/infra/persistence/postgres/query"

	"gorm.io/gorm"
)

// commentRepository implements the domain.CommentRepository interface on the generated query builder.
type commentRepository struct {
	q *query.Query
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{q: query.Use(db)}
}

// Create appends a comment to a task.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.q.CommentModel.WithContext(ctx).Create(commentM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTaskNotFound.WrapMessage("comment references an unknown task")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toCommentDomain(data *model.CommentModel, author *model.UserModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		TaskID:    data.TaskID,
		Author:    participant(author, data.AuthorID),
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	commentM := &model.CommentModel{
		ID:        data.ID,
		TaskID:    data.TaskID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
	if data.Author != nil {
		commentM.AuthorID = data.Author.ID
	}

	return commentM
}
