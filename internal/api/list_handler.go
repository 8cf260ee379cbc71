package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/PatrickPenner/shopping-list-api/internal/api/shared"
	"github.com/PatrickPenner/shopping-list-api/internal/service"
)

// ListHandler handles shopping list and item endpoints.
type ListHandler struct {
	listService *service.ListService
}

// NewListHandler creates a ListHandler using the given service.
func NewListHandler(listService *service.ListService) *ListHandler {
	return &ListHandler{
		listService: listService,
	}
}

// GetLists handles GET /lists/. An optional ?open=true|false query
// parameter filters by open state.
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var open *bool
	if openParam := r.URL.Query().Get("open"); openParam != "" {
		value, err := strconv.ParseBool(openParam)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "open must be a boolean")
			return
		}
		open = &value
	}

	lists, err := h.listService.GetLists(r.Context(), userID, open)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lists)
}

// CreateList handles POST /lists/. The created list is always open;
// creation fails with 400 when no items are given and with 403 when
// the user already has an open list.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var req SubmitShoppingList
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	items := make([]service.NewItem, 0, len(req.Items))
	for _, submitItem := range req.Items {
		if submitItem.Name == "" {
			shared.RespondWithError(w, r, http.StatusBadRequest, "item name is required")
			return
		}
		items = append(items, service.NewItem{
			Name: submitItem.Name,
			Open: submitItem.Open,
		})
	}

	list, err := h.listService.CreateList(r.Context(), userID, items)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// UpdateList handles PUT /lists/{listID}/. Only the open state can
// change. Reopening while another list is open fails with 400; a
// payload without an open field is a no-op answered with 204.
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	userID, listID, ok := handleUserIDAndPathUUID(w, r, "listID")
	if !ok {
		return
	}

	var req SubmitShoppingList
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	list, changed, err := h.listService.UpdateList(r.Context(), userID, listID, req.Open)
	if err != nil {
		// Reopening conflicts map to 400 here, unlike creation where
		// the same rule answers 403.
		if errors.Is(err, service.ErrOpenListExists) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	if !changed {
		shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// GetItems handles GET /lists/{listID}/items/. A list that is missing
// or owned by someone else answers 404; there is no need to tell the
// user the list exists and belongs to someone else.
func (h *ListHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	userID, listID, ok := handleUserIDAndPathUUID(w, r, "listID")
	if !ok {
		return
	}

	items, err := h.listService.GetItems(r.Context(), userID, listID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// UpdateItem handles PUT /lists/{listID}/items/{itemID}/. A missing or
// foreign list hides its items, so both cases answer 404.
func (h *ListHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, listID, ok := handleUserIDAndPathUUID(w, r, "listID")
	if !ok {
		return
	}

	itemID, err := getPathUUID(r, "itemID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req SubmitItem
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "item name is required")
		return
	}

	item, err := h.listService.UpdateItem(r.Context(), userID, listID, itemID, req.Name, req.Open)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}
