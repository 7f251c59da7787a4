// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/internal/utils"
	"github.com/avdeyev/studykeep/models"
)

func (h *Handler) createFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	topicID, err := pathID(r, "topicID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var request models.CreateFlashcardRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	card, err := h.services.FlashcardService.CreateFlashcard(ctx, userID, topicID, &request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, card, http.StatusCreated)
}

func (h *Handler) getFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	flashcardID, err := pathID(r, "flashcardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	card, err := h.services.FlashcardService.GetFlashcard(ctx, userID, flashcardID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) updateFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	flashcardID, err := pathID(r, "flashcardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var request models.UpdateFlashcardRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	card, err := h.services.FlashcardService.UpdateFlashcard(ctx, userID, flashcardID, &request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) deleteFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	flashcardID, err := pathID(r, "flashcardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.FlashcardService.DeleteFlashcard(ctx, userID, flashcardID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listFlashcardsByTopic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	topicID, err := pathID(r, "topicID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cards, err := h.services.FlashcardService.ListFlashcardsByTopic(ctx, userID, topicID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, cards, http.StatusOK)
}
