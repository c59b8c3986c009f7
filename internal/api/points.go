package points

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/davidcortesdev/differentroads-loyalty/internal/locations"
	model "github.com/davidcortesdev/differentroads-loyalty/internal/models"
	service "github.com/davidcortesdev/differentroads-loyalty/internal/services"
)

type PointsHandler struct {
	router    *mux.Router
	service   *service.PointsService
	locations *locations.Service
	logger    *zap.Logger
}

func NewHandler(serv *service.PointsService, loc *locations.Service, logger *zap.Logger) *PointsHandler {
	router := mux.NewRouter()
	handler := &PointsHandler{router, serv, loc, logger}
	router.HandleFunc("/balance/{traveler}", handler.BalanceHandler).Methods(http.MethodGet)
	router.HandleFunc("/transactions/{traveler}", handler.TransactionsHandler).Methods(http.MethodGet)
	router.HandleFunc("/categories", handler.CategoriesHandler).Methods(http.MethodGet)
	router.HandleFunc("/category/{traveler}", handler.CategoryHandler).Methods(http.MethodGet)
	router.HandleFunc("/distribution", handler.DistributionHandler).Methods(http.MethodPost)
	router.HandleFunc("/redeem", handler.RedeemHandler).Methods(http.MethodPost)
	router.HandleFunc("/locations/{code}", handler.LocationHandler).Methods(http.MethodGet)

	return handler
}

func (h *PointsHandler) ServeHTTP(w http.ResponseWriter, res *http.Request) {
	h.router.ServeHTTP(w, res)
}

func (h *PointsHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

func (h *PointsHandler) writeJSON(w http.ResponseWriter, service string, v any) {
	j, err := json.Marshal(v)
	if err != nil {
		h.Log("Marshal", service, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(j)
}

type BalanceResponse struct {
	Traveler string `json:"traveler"`
	Points   int    `json:"points"`
}

// Balance of a traveler. A ledger outage degrades to a zero balance so the
// UI keeps working.
func (h *PointsHandler) BalanceHandler(w http.ResponseWriter, req *http.Request) {
	traveler := mux.Vars(req)["traveler"]

	points, err := h.service.GetBalance(req.Context(), traveler)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		h.Log("Get balance", "BalanceHandler", err)
		points = 0
	}
	h.writeJSON(w, "BalanceHandler", &BalanceResponse{traveler, points})
}

// Transaction history for a period (from/to, YYYY-MM-DD). Fetch errors
// degrade to an empty history.
func (h *PointsHandler) TransactionsHandler(w http.ResponseWriter, req *http.Request) {
	traveler := mux.Vars(req)["traveler"]

	from, err := time.Parse("2006-01-02", req.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "from date is not correct", http.StatusBadRequest)
		return
	}
	to, err := time.Parse("2006-01-02", req.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "to date is not correct", http.StatusBadRequest)
		return
	}
	to = to.Add(24*time.Hour - time.Second)

	tnxs, err := h.service.GetTnx(req.Context(), traveler, from, to)
	if err != nil {
		h.Log("Get transactions", "TransactionsHandler", err)
		tnxs = []model.PointsTransaction{}
	}
	h.writeJSON(w, "TransactionsHandler", tnxs)
}

// Full tier table
func (h *PointsHandler) CategoriesHandler(w http.ResponseWriter, req *http.Request) {
	h.writeJSON(w, "CategoriesHandler", service.AllCategoryConfigs())
}

// Current tier of a traveler. Errors degrade to the base tier.
func (h *PointsHandler) CategoryHandler(w http.ResponseWriter, req *http.Request) {
	traveler := mux.Vars(req)["traveler"]

	cfg, err := h.service.GetCategory(req.Context(), traveler)
	if err != nil {
		h.Log("Get category", "CategoryHandler", err)
	}
	h.writeJSON(w, "CategoryHandler", cfg)
}

type DistributionResponse struct {
	Summary    model.DistributionSummary `json:"summary"`
	Validation model.ValidationResult    `json:"validation"`
}

// Preview of a per-traveler split plus its validation verdict
func (h *PointsHandler) DistributionHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "DistributionHandler", err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	dreq := service.DistributionRequest{}
	if err = json.Unmarshal(body, &dreq); err != nil {
		h.Log("Unmarshal", "DistributionHandler", err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}

	summary, validation, err := h.service.PreviewDistribution(req.Context(), dreq)
	if err != nil {
		h.Log("Preview", "DistributionHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, "DistributionHandler", &DistributionResponse{summary, validation})
}

// Commit a redemption. Validation failures come back as 422 with the
// ValidationResult body, so the UI can surface the first violated rule.
func (h *PointsHandler) RedeemHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "RedeemHandler", err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	rreq := service.RedeemRequest{}
	if err = json.Unmarshal(body, &rreq); err != nil {
		h.Log("Unmarshal", "RedeemHandler", err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}

	result, err := h.service.Redeem(req.Context(), rreq)
	if err != nil {
		h.Log("Redeem", "RedeemHandler", err)
		if errors.Is(err, model.ErrInsufficientBalance) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, model.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !result.Valid {
		j, _ := json.Marshal(result)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write(j)
		return
	}
	h.writeJSON(w, "RedeemHandler", result)
}

// Airport/location lookup, coalesced and cached behind the handler
func (h *PointsHandler) LocationHandler(w http.ResponseWriter, req *http.Request) {
	code := mux.Vars(req)["code"]

	loc, err := h.locations.GetLocation(req.Context(), code)
	if err != nil {
		h.Log("Get location", "LocationHandler", err)
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, "LocationHandler", loc)
}
