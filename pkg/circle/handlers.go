// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package circle

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/cride/circle-service/internal/http/types"
	"github.com/cride/circle-service/internal/logging"
	"github.com/cride/circle-service/internal/types"
	"github.com/cride/circle-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/circles", a.listCircles)
	mux.Post("/api/v0/circles", a.createCircle)
	mux.Get("/api/v0/circles/{slug}", a.getCircle)
	mux.Patch("/api/v0/circles/{slug}", a.updateCircle)
	mux.Get("/api/v0/circles/{slug}/members", a.listMembers)
	mux.Post("/api/v0/circles/{slug}/members", a.joinCircle)
	mux.Delete("/api/v0/circles/{slug}/members/{user}", a.removeMember)
	mux.Put("/api/v0/circles/{slug}/members/{user}/admin", a.setMemberAdmin)
	mux.Post("/api/v0/circles/{slug}/invitations", a.reconcileInvitations)
}

type createCircleRequest struct {
	Name         string `json:"name" validate:"required"`
	SlugName     string `json:"slug_name" validate:"required,max=40,hostname_rfc1123"`
	About        string `json:"about"`
	IsPublic     bool   `json:"is_public"`
	IsLimited    bool   `json:"is_limited"`
	MembersLimit int    `json:"members_limit" validate:"gte=0"`
}

type updateCircleRequest struct {
	Name         *string `json:"name,omitempty"`
	About        *string `json:"about,omitempty"`
	IsPublic     *bool   `json:"is_public,omitempty"`
	IsLimited    *bool   `json:"is_limited,omitempty"`
	MembersLimit *int    `json:"members_limit,omitempty" validate:"omitempty,gte=0"`
}

type joinCircleRequest struct {
	InvitationCode string `json:"invitation_code" validate:"required,min=8"`
}

type setAdminRequest struct {
	IsAdmin bool `json:"is_admin"`
}

func (a *API) listCircles(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	circles, err := a.service.ListCircles(r.Context(), page, size)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, circles)
}

func (a *API) createCircle(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httpTypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated request")
		return
	}

	req := new(createCircleRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httpTypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	circle, err := a.service.CreateCircle(r.Context(), userID, &types.Circle{
		Name:         req.Name,
		SlugName:     req.SlugName,
		About:        req.About,
		IsPublic:     req.IsPublic,
		IsLimited:    req.IsLimited,
		MembersLimit: req.MembersLimit,
	})
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, circle)
}

func (a *API) getCircle(w http.ResponseWriter, r *http.Request) {
	circle, err := a.service.GetCircle(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, circle)
}

func (a *API) updateCircle(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httpTypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated request")
		return
	}

	req := new(updateCircleRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httpTypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	c := new(types.Circle)
	paths := make([]string, 0)
	if req.Name != nil {
		c.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.About != nil {
		c.About = *req.About
		paths = append(paths, "about")
	}
	if req.IsPublic != nil {
		c.IsPublic = *req.IsPublic
		paths = append(paths, "is_public")
	}
	if req.IsLimited != nil {
		c.IsLimited = *req.IsLimited
		paths = append(paths, "is_limited")
	}
	if req.MembersLimit != nil {
		c.MembersLimit = *req.MembersLimit
		paths = append(paths, "members_limit")
	}

	circle, err := a.service.UpdateCircle(r.Context(), userID, chi.URLParam(r, "slug"), c, paths)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, circle)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httpTypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated request")
		return
	}

	members, err := a.service.ListMembers(r.Context(), userID, chi.URLParam(r, "slug"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, members)
}

func (a *API) joinCircle(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httpTypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated request")
		return
	}

	req := new(joinCircleRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httpTypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := a.service.RedeemInvitation(r.Context(), chi.URLParam(r, "slug"), userID, req.InvitationCode)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, member)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httpTypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated request")
		return
	}

	err := a.service.DeactivateMember(r.Context(), chi.URLParam(r, "slug"), userID, chi.URLParam(r, "user"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) setMemberAdmin(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httpTypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated request")
		return
	}

	req := new(setAdminRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httpTypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := a.service.SetMemberAdmin(r.Context(), chi.URLParam(r, "slug"), userID, chi.URLParam(r, "user"), req.IsAdmin)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) reconcileInvitations(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httpTypes.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated request")
		return
	}

	bundle, err := a.service.ReconcileInvitations(r.Context(), chi.URLParam(r, "slug"), userID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, bundle)
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpTypes.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInvitation):
		httpTypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		httpTypes.WriteErrorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrAlreadyMember), errors.Is(err, ErrCircleFull), errors.Is(err, ErrConflict):
		httpTypes.WriteErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrQuotaExhausted):
		httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	default:
		a.logger.Errorf("Unexpected error handling request: %v", err)
		httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error")
	}
}
