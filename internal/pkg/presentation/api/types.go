package api

import "github.com/diwise/iot-asset-registry/pkg/types"

// userResponse is what the API returns for a user. The stored password
// hash never leaves the service.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func newUserResponse(u types.User) userResponse {
	return userResponse{
		ID:    u.UserID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func newUserListResponse(c types.Collection[types.User]) []userResponse {
	users := make([]userResponse, 0, len(c.Data))
	for _, u := range c.Data {
		users = append(users, newUserResponse(u))
	}
	return users
}

type deleteResponse struct {
	ID string `json:"id"`
}
