package accounts

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/middleware"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/utils"
)

// Handler exposes registration and login over HTTP. Business failures
// (duplicate email, bad credentials) come back as success=false payloads
// on a 200, never as transport errors.
type Handler struct {
	Directory *Directory
}

func NewHandler(directory *Directory) *Handler {
	return &Handler{Directory: directory}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Println("Register decode error:", err)
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := h.Directory.Register(input.Email, input.Password); err != nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"success": false,
			"message": "Email already exists",
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Println("Login decode error:", err)
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	user, err := h.Directory.Authenticate(input.Email, input.Password)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		log.Println("Login token error:", err)
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"user":    user,
		"token":   token,
	})
}
