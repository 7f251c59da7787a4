// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/health", h.health)
		r.Get("/api/health/db", h.healthDB)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/topics", func(r chi.Router) {
			r.Post("/", h.createTopic)
			r.Get("/", h.listTopLevelTopics)

			r.Route("/{topicID}", func(r chi.Router) {
				r.Get("/", h.getTopic)
				r.Put("/", h.updateTopic)
				r.Patch("/", h.updateTopic)
				r.Delete("/", h.deleteTopic)
				r.Get("/subtopics", h.listSubtopics)

				r.Post("/notes", h.createNote)
				r.Get("/notes", h.listNotesByTopic)
				r.Post("/flashcards", h.createFlashcard)
				r.Get("/flashcards", h.listFlashcardsByTopic)
				r.Post("/resources", h.createResource)
				r.Get("/resources", h.listResourcesByTopic)
			})
		})

		r.Route("/api/notes/{noteID}", func(r chi.Router) {
			r.Get("/", h.getNote)
			r.Put("/", h.updateNote)
			r.Patch("/", h.updateNote)
			r.Delete("/", h.deleteNote)
		})

		r.Route("/api/flashcards/{flashcardID}", func(r chi.Router) {
			r.Get("/", h.getFlashcard)
			r.Put("/", h.updateFlashcard)
			r.Patch("/", h.updateFlashcard)
			r.Delete("/", h.deleteFlashcard)
		})

		r.Route("/api/resources/{resourceID}", func(r chi.Router) {
			r.Get("/", h.getResource)
			r.Put("/", h.updateResource)
			r.Patch("/", h.updateResource)
			r.Delete("/", h.deleteResource)
			r.Get("/download", h.downloadResource)
		})
	})

	return router
}
