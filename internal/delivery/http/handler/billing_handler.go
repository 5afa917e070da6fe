package handler

import (
	"encoding/json"
	"net/http"

	"patient-management-service/internal/delivery/dto"
	"patient-management-service/internal/usecase"
	"patient-management-service/pkg/response"
	"patient-management-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

func (h *BillingHandler) CreateBilling(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBillingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.billingUsecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Billing record created successfully", record)
}

func (h *BillingHandler) GetAllBillings(w http.ResponseWriter, r *http.Request) {
	var patientID *uuid.UUID
	if raw := r.URL.Query().Get("patient_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
			return
		}
		patientID = &id
	}

	list, err := h.billingUsecase.GetAll(r.Context(), patientID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Billing records retrieved successfully", list)
}

func (h *BillingHandler) GetBilling(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid billing record ID", nil)
		return
	}

	record, err := h.billingUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Billing record retrieved successfully", record)
}
