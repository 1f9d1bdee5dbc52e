package handlers

import (
	"net/http"

	"github.com/construction-sites/crm/internal/usecase"
)

type MockupHandler struct {
	FindUC *usecase.FindMockupsUseCase
}

func NewMockupHandler(find *usecase.FindMockupsUseCase) *MockupHandler {
	return &MockupHandler{FindUC: find}
}

func (h *MockupHandler) Check(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		slug = r.URL.Query().Get("business")
	}

	output, err := h.FindUC.Execute(slug)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, output)
}
