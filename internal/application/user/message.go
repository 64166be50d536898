package user

import (
	"fmt"

	"github.com/gpmendes7/bookstoremanager-course/internal/domain/user"
)

// MessageDTO 写操作结果提示，不持久化
type MessageDTO struct {
	Message string `json:"message"`
}

func creationMessage(u *user.User) *MessageDTO {
	return resultMessage(u, "created")
}

func updatedMessage(u *user.User) *MessageDTO {
	return resultMessage(u, "updated")
}

func resultMessage(u *user.User, action string) *MessageDTO {
	return &MessageDTO{
		Message: fmt.Sprintf("User %s with ID %d successfully %s", u.Username, u.ID, action),
	}
}
