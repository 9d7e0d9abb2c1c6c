package user

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/rehistro/internal/pkg/message"
	"github.com/ferdiebergado/rehistro/internal/pkg/web"
)

const maskChar = "*"

// UserService is the registration/activation service as the transport layer
// consumes it.
type UserService interface {
	Register(ctx context.Context, params RegisterParams) (PublicUser, error)
	Activate(ctx context.Context, authUser PublicUser, code string) (PublicUser, error)
	Authenticate(ctx context.Context, email, password string) (PublicUser, error)
}

// errorStatus maps a service error to a response, built once at wiring
// time instead of scattering status decisions across handlers.
type errorStatus struct {
	err    error
	status int
	msg    string
}

var errorStatuses = []errorStatus{
	{ErrAlreadyRegistered, http.StatusConflict, message.AlreadyRegistered},
	{ErrAlreadyActivated, http.StatusConflict, message.AlreadyActivated},
	{ErrCodeInvalid, http.StatusUnprocessableEntity, message.CodeInvalid},
	{ErrInvalidCredentials, http.StatusUnauthorized, message.InvalidCredentials},
	{ErrNotActivated, http.StatusForbidden, message.NotActivated},
}

func respondError(w http.ResponseWriter, err error) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			web.Fail(w, es.status, err, es.msg, nil)
			return
		}
	}
	web.Fail(w, http.StatusInternalServerError, err, message.ServerError, nil)
}

type Handler struct {
	svc UserService
}

func NewHandler(svc UserService) *Handler {
	return &Handler{svc: svc}
}

type RegisterRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required,password"`
}

func (r RegisterRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	params := RegisterParams{
		Email:    req.Email,
		Password: req.Password,
	}
	created, err := h.svc.Register(r.Context(), params)
	if err != nil {
		respondError(w, err)
		return
	}

	msg := message.Registered
	web.OK(w, http.StatusCreated, &msg, &created)
}

type ActivateRequest struct {
	Code string `json:"code,omitempty" validate:"required,verifycode"`
}

func (r ActivateRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("code", maskChar),
	)
}

func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	authUser, err := FromContext(r.Context())
	if err != nil {
		web.Fail(w, http.StatusUnauthorized, err, message.InvalidCredentials, nil)
		return
	}

	req, err := web.ParamsFromContext[ActivateRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	activated, err := h.svc.Activate(r.Context(), authUser, req.Code)
	if err != nil {
		respondError(w, err)
		return
	}

	msg := message.Activated
	web.OK(w, http.StatusOK, &msg, &activated)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	authUser, err := FromContext(r.Context())
	if err != nil {
		web.Fail(w, http.StatusUnauthorized, err, message.InvalidCredentials, nil)
		return
	}

	web.OK(w, http.StatusOK, nil, &authUser)
}
