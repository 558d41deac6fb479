// Package http provides http transport for posts
package http

import (
	stdhttp "net/http"

	"sentimenttech/internal/modkit/httpkit"
	"sentimenttech/internal/services/posts/domain"
	svc "sentimenttech/internal/services/posts/service"
)

// Register mounts posts endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[normalizeInput](r, "/normalize", h.normalize)
}

type handlers struct{ svc svc.Service }

// normalizeInput is the preview payload for ad hoc normalization
type normalizeInput struct {
	Comments []domain.RawComment `json:"comments" validate:"required,min=1,max=500"`
}

// swagger:route POST /posts/normalize Posts postsNormalize
// @Summary Normalize raw social comments into canonical posts
// @Tags Posts
// @Accept json
// @Produce json
// @Param payload body normalizeInput true "Raw comments"
// @Success 200 {array} domain.Post "ok"
// @Router /posts/normalize [post]
func (h *handlers) normalize(r *stdhttp.Request, in normalizeInput) (any, error) {
	return h.svc.NormalizeAll(r.Context(), in.Comments)
}
