package handler

import (
	"net/http"

	"alumni/internal/listing"
	"alumni/internal/repository"
)

type DirectoryHandler struct {
	render *Renderer
	alumni *repository.AlumniRepository
}

func NewDirectoryHandler(render *Renderer, alumni *repository.AlumniRepository) *DirectoryHandler {
	return &DirectoryHandler{render: render, alumni: alumni}
}

func (h *DirectoryHandler) DirectoryPage(w http.ResponseWriter, r *http.Request) {
	all := h.alumni.GetAll()
	q := listing.ParseAlumniQuery(r.URL.Query())

	data := h.render.view(w, r, "Alumni Directory")
	data["AlumniQuery"] = q
	data["Years"] = listing.GraduationYears(all)
	data["Alumni"] = listing.FilterAlumni(all, q)
	h.render.render(w, r, "directory.html", http.StatusOK, data)
}
