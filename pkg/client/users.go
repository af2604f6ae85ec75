package client

import "net/http"

// User is a user row as returned by the API.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsDeleted bool   `json:"isDeleted"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// UserPayload is the body of a user create or update call.
type UserPayload struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUser creates a user.
func (c *Client) CreateUser(payload UserPayload) (*User, *CallError) {
	var user User
	if _, err := c.do(http.MethodPost, "/users", nil, payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Users lists all users.
func (c *Client) Users() ([]User, *CallError) {
	var users []User
	if _, err := c.do(http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// User fetches one user by ID.
func (c *Client) User(id string) (*User, *CallError) {
	var user User
	if _, err := c.do(http.MethodGet, "/users/"+id, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a full update to a user.
func (c *Client) UpdateUser(id string, payload UserPayload) (*User, *CallError) {
	var user User
	if _, err := c.do(http.MethodPut, "/users/"+id, nil, payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser soft-deletes a user.
func (c *Client) DeleteUser(id string) (*User, *CallError) {
	var user User
	if _, err := c.do(http.MethodDelete, "/users/"+id, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
