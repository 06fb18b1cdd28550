package orders

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/orderfeed"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/utils"
)

// Handler exposes order placement and history over HTTP. Placed orders
// are also pushed to the websocket feed when a hub is attached.
type Handler struct {
	Ledger *Ledger
	Feed   *orderfeed.Hub
}

func NewHandler(ledger *Ledger, feed *orderfeed.Hub) *Handler {
	return &Handler{Ledger: ledger, Feed: feed}
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Println("PlaceOrder decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := input.UserID
	if userID == "" {
		userID = utils.GetUserIDFromRequest(r)
	}

	order, err := h.Ledger.Place(userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	if h.Feed != nil {
		h.Feed.PublishOrder(order)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "order": order})
}

func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = utils.GetUserIDFromRequest(r)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"orders": h.Ledger.List(userID)})
}

func (h *Handler) PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := ps.ByName("userid")
	orderID := ps.ByName("orderid")

	order, err := h.Ledger.Get(userID, orderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	pdfBytes, err := BuildReceiptPDF(order)
	if err != nil {
		log.Println("PrintReceipt pdf error:", err)
		http.Error(w, "Failed to generate receipt", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+order.ID+".pdf")
	w.Write(pdfBytes)
}
