package handler

import (
	"net/http"

	"alumni/internal/entity"
	"alumni/internal/modal"
	"alumni/internal/repository"
)

type StoryHandler struct {
	render  *Renderer
	stories *repository.StoryRepository
}

func NewStoryHandler(render *Renderer, stories *repository.StoryRepository) *StoryHandler {
	return &StoryHandler{render: render, stories: stories}
}

func (h *StoryHandler) StoriesPage(w http.ResponseWriter, r *http.Request) {
	m := modal.Parse(r.URL.Query())

	var selected *entity.Story
	if m.Is(modal.Story) {
		s, err := h.stories.GetByID(m.ID)
		if err != nil {
			h.render.redirect(w, r, modal.CloseURL(r.URL.Path, r.URL.Query()), "", "Story not found")
			return
		}
		selected = &s
	}

	data := h.render.view(w, r, "Success Stories", modal.Story)
	data["Stories"] = h.stories.GetAll()
	data["StoryPlaceholder"] = entity.StoryPlaceholder
	data["Selected"] = selected
	h.render.render(w, r, "stories.html", http.StatusOK, data)
}
