package services

import (
	"net/http"
)

// AuthEngine подставляет заголовки авторизации в запрос к Ozon Seller API.
type AuthEngine interface {
	SetAuth(request *http.Request)
}

// ApiKeyAuth авторизует запросы парой заголовков Client-Id / Api-Key.
type ApiKeyAuth struct {
	clientID string
	apiKey   string
}

func (a *ApiKeyAuth) SetAuth(request *http.Request) {
	request.Header.Set("Client-Id", a.clientID)
	request.Header.Set("Api-Key", a.apiKey)
}

func NewApiKeyAuth(clientID, apiKey string) *ApiKeyAuth {
	if clientID == "" || apiKey == "" {
		return nil
	}
	return &ApiKeyAuth{clientID: clientID, apiKey: apiKey}
}
