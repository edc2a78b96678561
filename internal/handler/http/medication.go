// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/med-cabinet/internal/logger"
	"github.com/MKhiriev/med-cabinet/internal/utils"
	"github.com/MKhiriev/med-cabinet/internal/validators"
	"github.com/MKhiriev/med-cabinet/models"
	"github.com/go-chi/chi/v5"
)

// Verbatim client-facing messages of the medication endpoints.
const (
	msgMedicationRegistered = "Medication registered successfully"
	msgMedicationUpdated    = "Medication updated successfully"
	msgMedicationDeleted    = "Medication deleted successfully"
	msgMedicationNotFound   = "Medication not found."
	msgNoMedicationsFound   = "No medications found matching the criteria."
	msgUnauthorized         = "User not found or unauthorized."
	msgInvalidMedicationID  = "Invalid medication id."
	msgInvalidIssueDate     = "Invalid afterDateOfIssue format."
)

// dateOnlyLayout is accepted for the afterDateOfIssue query parameter in
// addition to RFC 3339 timestamps.
const dateOnlyLayout = "2006-01-02"

func (h *Handler) registerMedication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: msgUnauthorized}, http.StatusUnauthorized)
		return
	}

	var medication models.Medication
	if err := json.NewDecoder(r.Body).Decode(&medication); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	// ownership always comes from the token, never from the payload
	medication.UserID = userID

	created, err := h.services.MedicationService.Register(ctx, medication)
	if err != nil {
		h.writeMedicationError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MedicationResponse{Message: msgMedicationRegistered, Medication: created}, http.StatusOK)
}

func (h *Handler) getMedications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: msgUnauthorized}, http.StatusUnauthorized)
		return
	}

	filter, err := medicationFilterFromQuery(r, userID)
	if err != nil {
		log.Err(err).Msg("invalid medication filter")
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidIssueDate}, http.StatusBadRequest)
		return
	}

	medications, err := h.services.MedicationService.List(ctx, filter)
	if err != nil {
		log.Err(err).Msg("listing medications failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(medications) == 0 {
		utils.WriteJSON(w, models.MessageResponse{Message: msgNoMedicationsFound}, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, medications, http.StatusOK)
}

func (h *Handler) updateMedication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: msgUnauthorized}, http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidMedicationID}, http.StatusBadRequest)
		return
	}

	var medication models.Medication
	if err := json.NewDecoder(r.Body).Decode(&medication); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	// id and ownership are immutable: both come from the URL and the token
	medication.ID = id
	medication.UserID = userID

	updated, err := h.services.MedicationService.Update(ctx, medication)
	if err != nil {
		h.writeMedicationError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MedicationResponse{Message: msgMedicationUpdated, Medication: updated}, http.StatusOK)
}

func (h *Handler) deleteMedication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: msgUnauthorized}, http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidMedicationID}, http.StatusBadRequest)
		return
	}

	if err := h.services.MedicationService.Delete(ctx, id, userID); err != nil {
		h.writeMedicationError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgMedicationDeleted}, http.StatusOK)
}

// writeMedicationError maps a medication service error onto the wire:
// validation failures carry their field messages, everything else goes
// through the central error→status mapping with a generic body.
func (h *Handler) writeMedicationError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		log.Err(err).Msg("medication validation failed")
		utils.WriteJSON(w, models.ValidationErrorsResponse{Errors: validationErrs.Messages()}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	log.Err(err).Int("status", status).Msg("medication request failed")

	if status == http.StatusNotFound {
		utils.WriteJSON(w, models.MessageResponse{Message: msgMedicationNotFound}, http.StatusNotFound)
		return
	}
	http.Error(w, http.StatusText(status), status)
}

// medicationFilterFromQuery builds the repository filter from the optional
// query parameters. afterDateOfIssue accepts RFC 3339 or a bare date and is
// an inclusive lower bound.
func medicationFilterFromQuery(r *http.Request, userID int64) (models.MedicationFilter, error) {
	query := r.URL.Query()

	filter := models.MedicationFilter{
		UserID:      userID,
		Description: query.Get("description"),
		Frequency:   query.Get("frequency"),
		Reason:      query.Get("reason"),
	}

	if raw := query.Get("afterDateOfIssue"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			parsed, err = time.Parse(dateOnlyLayout, raw)
		}
		if err != nil {
			return models.MedicationFilter{}, err
		}
		filter.AfterDateOfIssue = &parsed
	}

	return filter, nil
}
