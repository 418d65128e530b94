package handler

import (
	"strconv"
	"time"

	"taskman/internal/domain/entity"
	"taskman/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserResponse is the public view of an account. Credentials and codes are never exposed.
type UserResponse struct {
	ID         uuid.UUID   `json:"id"`
	Email      string      `json:"email"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Role       entity.Role `json:"role"`
	IsVerified bool        `json:"is_verified"`
}

// TokenResponse carries an issued token pair.
type TokenResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	Role         entity.Role `json:"role"`
}

// ResetTokenResponse carries the token that authorizes a password update.
type ResetTokenResponse struct {
	ResetToken string `json:"reset_token"`
}

// CommentResponse is the public view of a comment.
type CommentResponse struct {
	ID          uuid.UUID `json:"id"`
	TaskID      uuid.UUID `json:"task_id"`
	AuthorEmail string    `json:"author_email"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskResponse is the public view of a task with its comments.
type TaskResponse struct {
	ID            uuid.UUID           `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Status        entity.TaskStatus   `json:"status"`
	Priority      entity.TaskPriority `json:"priority"`
	AuthorEmail   string              `json:"author_email"`
	ExecutorEmail string              `json:"executor_email"`
	Comments      []CommentResponse   `json:"comments"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// TaskPageResponse is one page of tasks.
type TaskPageResponse struct {
	Items []TaskResponse `json:"items"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Total int64          `json:"total"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Role:       user.Role,
		IsVerified: user.IsVerified,
	}
}

func newTokenResponse(pair *entity.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Role:         pair.Role,
	}
}

func newCommentResponse(comment *entity.Comment) CommentResponse {
	out := CommentResponse{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	if comment.Author != nil {
		out.AuthorEmail = comment.Author.Email
	}

	return out
}

func newTaskResponse(task *entity.Task) TaskResponse {
	out := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		Comments:    make([]CommentResponse, 0, len(task.Comments)),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.Author != nil {
		out.AuthorEmail = task.Author.Email
	}
	if task.Executor != nil {
		out.ExecutorEmail = task.Executor.Email
	}
	for _, comment := range task.Comments {
		out.Comments = append(out.Comments, newCommentResponse(comment))
	}

	return out
}

func newTaskPageResponse(page *entity.Page[*entity.Task]) TaskPageResponse {
	out := TaskPageResponse{
		Items: make([]TaskResponse, 0, len(page.Items)),
		Page:  page.Page,
		Size:  page.Size,
		Total: page.Total,
	}
	for _, task := range page.Items {
		out.Items = append(out.Items, newTaskResponse(task))
	}

	return out
}

// pageRequest reads the page and size query parameters. Missing or invalid
// values are left at zero and normalized by the usecase.
func pageRequest(c echo.Context) repository.PageRequest {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	return repository.PageRequest{Page: page, Size: size}
}
