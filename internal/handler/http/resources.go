// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/internal/utils"
	"github.com/avdeyev/studykeep/models"
)

// uploadFileField is the multipart form field carrying the uploaded file.
const uploadFileField = "file"

// createResource attaches a resource to a topic. A multipart/form-data body
// is treated as a file upload (fields "title" and "file"); any other body is
// decoded as a JSON link resource.
func (h *Handler) createResource(w http.ResponseWriter, r *http.Request) {
	contentType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && contentType == "multipart/form-data" {
		h.createFileResource(w, r)
		return
	}

	h.createLinkResource(w, r)
}

func (h *Handler) createLinkResource(w http.ResponseWriter, r *http.Request) {
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

	var request models.CreateLinkResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resource, err := h.services.ResourceService.CreateLinkResource(ctx, userID, topicID, &request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, resource, http.StatusCreated)
}

func (h *Handler) createFileResource(w http.ResponseWriter, r *http.Request) {
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

	file, fileHeader, ok := h.uploadFromRequest(w, r)
	if !ok {
		return
	}
	defer file.Close()
	defer r.MultipartForm.RemoveAll()

	title := r.FormValue("title")
	if title == "" {
		title = fileHeader.Filename
	}

	resource, err := h.services.ResourceService.CreateFileResource(ctx, userID, topicID, title, fileHeader.Filename, file)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, resource, http.StatusCreated)
}

// uploadFromRequest parses the multipart form and extracts the uploaded
// file. On failure it writes the error response itself and returns ok=false;
// the caller must close the returned file.
func (h *Handler) uploadFromRequest(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, bool) {
	log := logger.FromRequest(r)

	// The limit covers the whole multipart body, form fields included.
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadConfigs.MaxUploadSize)

	if err := r.ParseMultipartForm(h.uploadConfigs.MaxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Err(err).Int64("limit", h.uploadConfigs.MaxUploadSize).Msg("upload too large")
			http.Error(w, fmt.Sprintf("upload exceeds the %d byte limit", h.uploadConfigs.MaxUploadSize),
				http.StatusRequestEntityTooLarge)
			return nil, nil, false
		}

		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return nil, nil, false
	}

	file, fileHeader, err := r.FormFile(uploadFileField)
	if err != nil {
		log.Err(err).Msg("missing file form field")
		http.Error(w, "missing `file` form field", http.StatusBadRequest)
		return nil, nil, false
	}

	return file, fileHeader, true
}

func (h *Handler) getResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	resourceID, err := pathID(r, "resourceID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resource, err := h.services.ResourceService.GetResource(ctx, userID, resourceID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, resource, http.StatusOK)
}

// updateResource applies a partial update. A multipart/form-data body
// replaces the stored file of a pdf resource (fields "title" and "file");
// any other body is decoded as a JSON metadata update.
func (h *Handler) updateResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	resourceID, err := pathID(r, "resourceID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var request models.UpdateResourceRequest

	contentType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && contentType == "multipart/form-data" {
		file, fileHeader, ok := h.uploadFromRequest(w, r)
		if !ok {
			return
		}
		defer file.Close()
		defer r.MultipartForm.RemoveAll()

		request.NewFile = file
		request.NewFilename = fileHeader.Filename
		if title := r.FormValue("title"); title != "" {
			request.Title = &title
		}
	} else if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resource, err := h.services.ResourceService.UpdateResource(ctx, userID, resourceID, &request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, resource, http.StatusOK)
}

func (h *Handler) deleteResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	resourceID, err := pathID(r, "resourceID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.ResourceService.DeleteResource(ctx, userID, resourceID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) downloadResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	resourceID, err := pathID(r, "resourceID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resource, file, err := h.services.ResourceService.DownloadResource(ctx, userID, resourceID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	defer file.Close()

	filename := resource.OriginalFilename
	if filename == "" {
		filename = "download.pdf"
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	if resource.FileSize > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(resource.FileSize, 10))
	}

	if _, err := io.Copy(w, file); err != nil {
		log.Err(err).Int64("resource_id", resourceID).Msg("error streaming file to client")
	}
}

func (h *Handler) listResourcesByTopic(w http.ResponseWriter, r *http.Request) {
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

	resources, err := h.services.ResourceService.ListResourcesByTopic(ctx, userID, topicID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, resources, http.StatusOK)
}
