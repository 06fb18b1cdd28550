package catalog

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/utils"
)

// Handler exposes the catalog over HTTP.
type Handler struct {
	Store *Catalog
}

func NewHandler(store *Catalog) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"products": h.Store.List()})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	product, err := h.Store.Get(ps.ByName("productid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}
