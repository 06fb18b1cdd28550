package cart

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/utils"
)

// Handler exposes cart operations over HTTP. Callers identify themselves
// with a userId in the payload or query string; a logged-in caller may
// omit it and the id from the bearer token is used instead.
type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

type cartMutation struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func resolveUserID(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return utils.GetUserIDFromRequest(r)
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input cartMutation
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := resolveUserID(r, input.UserID)
	if err := h.Store.AddItem(userID, input.ProductID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "added"})
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := resolveUserID(r, r.URL.Query().Get("userId"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"cart": h.Store.View(userID)})
}

func (h *Handler) UpdateCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input cartMutation
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Println("UpdateCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	// Invalid quantities and unknown carts/lines are deliberately a no-op.
	h.Store.UpdateQuantity(resolveUserID(r, input.UserID), input.ProductID, input.Quantity)
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input cartMutation
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Println("RemoveFromCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	h.Store.RemoveItem(resolveUserID(r, input.UserID), input.ProductID)
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
