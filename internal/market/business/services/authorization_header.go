package services

import (
	"fmt"
	"net/http"
)

// AuthEngine подставляет заголовки авторизации в запрос к API Яндекс.Маркета.
type AuthEngine interface {
	SetAuth(request *http.Request)
}

// BearerAuth авторизует запросы заголовком Authorization: Bearer.
type BearerAuth struct {
	token string
}

func (a *BearerAuth) SetAuth(request *http.Request) {
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", a.token))
	request.Header.Set("Accept", "application/json")
}

func NewBearerAuth(token string) *BearerAuth {
	if token == "" {
		return nil
	}
	return &BearerAuth{token: token}
}
