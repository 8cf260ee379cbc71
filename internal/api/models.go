package api

// Common request/response payloads. Domain entities (lists, items)
// serialize directly via their own JSON tags.

// TokenResponse is the response of the authentication endpoint. The
// field names follow the OAuth2 token response convention.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SubmitItem is an item payload within list creation and item updates.
type SubmitItem struct {
	Name string `json:"name" validate:"required"`
	Open bool   `json:"open"`
}

// SubmitShoppingList is the payload for list creation and updates.
// Open is a pointer so an update can omit it, which clients use to
// fetch-without-change; Items may be omitted on updates.
type SubmitShoppingList struct {
	Open  *bool        `json:"open"`
	Items []SubmitItem `json:"items"`
}
