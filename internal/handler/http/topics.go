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

func (h *Handler) createTopic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CreateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	topic, err := h.services.TopicService.CreateTopic(ctx, userID, &request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, topic, http.StatusCreated)
}

func (h *Handler) getTopic(w http.ResponseWriter, r *http.Request) {
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

	topic, err := h.services.TopicService.GetTopic(ctx, userID, topicID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, topic, http.StatusOK)
}

func (h *Handler) updateTopic(w http.ResponseWriter, r *http.Request) {
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

	var request models.UpdateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	topic, err := h.services.TopicService.UpdateTopic(ctx, userID, topicID, &request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, topic, http.StatusOK)
}

func (h *Handler) deleteTopic(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.services.TopicService.DeleteTopic(ctx, userID, topicID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) listTopLevelTopics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	topics, err := h.services.TopicService.ListTopLevelTopics(ctx, userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, topics, http.StatusOK)
}

func (h *Handler) listSubtopics(w http.ResponseWriter, r *http.Request) {
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

	subtopics, err := h.services.TopicService.ListSubtopics(ctx, userID, topicID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, subtopics, http.StatusOK)
}
