package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"billing_insurance/internal/domain/identity"
	"billing_insurance/internal/usecase/interfaces"
)

var ErrUserNotFound = errors.New("user not found")

// HTTPUserDirectory reads users from the user service, forwarding the caller's token.
type HTTPUserDirectory struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IUserDirectory = (*HTTPUserDirectory)(nil)

func NewHTTPUserDirectory(baseURL string, client *http.Client) *HTTPUserDirectory {
	return &HTTPUserDirectory{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (d *HTTPUserDirectory) GetUser(ctx context.Context, userID string) (interfaces.UserDetails, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/users/%s/", d.baseURL, userID), nil)
	if err != nil {
		return interfaces.UserDetails{}, err
	}
	req.Header.Set("Accept", "application/json")
	if token := identity.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return interfaces.UserDetails{}, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return interfaces.UserDetails{}, ErrUserNotFound
	case resp.StatusCode != http.StatusOK:
		return interfaces.UserDetails{}, fmt.Errorf("user service returned status %d", resp.StatusCode)
	}

	var raw struct {
		ID        json.Number `json:"id"`
		FirstName string      `json:"first_name"`
		LastName  string      `json:"last_name"`
		Email     string      `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return interfaces.UserDetails{}, fmt.Errorf("decode user: %w", err)
	}
	return interfaces.UserDetails{
		ID:        raw.ID.String(),
		FirstName: raw.FirstName,
		LastName:  raw.LastName,
		Email:     raw.Email,
	}, nil
}
