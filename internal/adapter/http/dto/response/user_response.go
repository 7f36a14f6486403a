package response

import "agroclima_portal/internal/domain/entities"

type UserResponse struct {
	ID          int    `json:"id"`
	Nome        string `json:"nome"`
	Login       string `json:"login"`
	MaxSessions int    `json:"max_sessions"`
	Pagante     string `json:"pagante"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Nome:        u.Nome,
		Login:       u.Login,
		MaxSessions: u.MaxSessions,
		Pagante:     u.Pagante,
	}
}
