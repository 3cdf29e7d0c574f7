package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/borbinha27/prova-3bim/internal/common"
	"github.com/borbinha27/prova-3bim/internal/server/models"
	"github.com/borbinha27/prova-3bim/internal/server/services"
)

type credentialsRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// respondWithJSON sends payload with the given status code.
func (s *Server) respondWithJSON(w http.ResponseWriter, r *http.Request, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error(r.Context(), "failed to marshal JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		s.logger.Error(r.Context(), "failed to write HTTP response", "error", err)
	}
}

func (s *Server) respondWithError(w http.ResponseWriter, r *http.Request, code int, message string) {
	s.respondWithJSON(w, r, code, map[string]string{"message": message})
}

// respondWithServiceError maps domain sentinels to HTTP status codes and
// the response messages the API contract fixes.
func (s *Server) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		s.respondWithError(w, r, http.StatusBadRequest, "Senha obrigatória")
	case errors.Is(err, common.ErrorUnknownUser):
		s.respondWithError(w, r, http.StatusUnauthorized, "Usuário não encontrado")
	case errors.Is(err, common.ErrorWrongPassword):
		s.respondWithError(w, r, http.StatusUnauthorized, "Senha incorreta")
	case errors.Is(err, common.ErrorForbidden):
		s.respondWithError(w, r, http.StatusForbidden, "Acesso negado")
	case errors.Is(err, common.ErrorNotFound):
		s.respondWithError(w, r, http.StatusNotFound, "Item não encontrado")
	default:
		s.logger.Error(r.Context(), "request failed", "error", err)
		s.respondWithError(w, r, http.StatusInternalServerError, "Erro interno")
	}
}

// idParam parses the {id} route parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func publicList(list []models.User) []models.PublicUser {
	out := make([]models.PublicUser, 0, len(list))
	for i := range list {
		out = append(out, list[i].Public())
	}
	return out
}

// handleLogin answers POST /api/dados/login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, "JSON inválido")
		return
	}

	token, err := s.users.Login(r.Context(), req.Nome, req.Email, req.Senha)
	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithJSON(w, r, http.StatusOK, map[string]string{"token": token})
}

// handleList answers GET /api/dados with the public projections of every
// record.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.List(r.Context())
	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}
	s.respondWithJSON(w, r, http.StatusOK, publicList(list))
}

// handleGetByID answers GET /api/dados/{id}.
func (s *Server) handleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		// a non-numeric id can match no record
		s.respondWithError(w, r, http.StatusNotFound, "Item não encontrado")
		return
	}

	user, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}
	s.respondWithJSON(w, r, http.StatusOK, user.Public())
}

// handleCreate answers POST /api/dados.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, "JSON inválido")
		return
	}

	user, err := s.users.Register(r.Context(), req.Nome, req.Email, req.Senha)
	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}
	s.respondWithJSON(w, r, http.StatusCreated, user.Public())
}

// handleUpdate answers PUT /api/dados/{id}; the authenticate middleware
// already placed the requester id in the context.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := userIDFromContext(r.Context())
	if !ok {
		s.respondWithError(w, r, http.StatusUnauthorized, "Token não fornecido")
		return
	}

	id, err := idParam(r)
	if err != nil {
		s.respondWithError(w, r, http.StatusNotFound, "Item não encontrado")
		return
	}

	var patch services.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, "JSON inválido")
		return
	}

	user, err := s.users.Update(r.Context(), id, requesterID, &patch)
	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}
	s.respondWithJSON(w, r, http.StatusOK, user.Public())
}

// handleDelete answers DELETE /api/dados/{id}.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := userIDFromContext(r.Context())
	if !ok {
		s.respondWithError(w, r, http.StatusUnauthorized, "Token não fornecido")
		return
	}

	id, err := idParam(r)
	if err != nil {
		s.respondWithError(w, r, http.StatusNotFound, "Item não encontrado")
		return
	}

	user, err := s.users.Delete(r.Context(), id, requesterID)
	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}
	s.respondWithJSON(w, r, http.StatusOK, user.Public())
}
