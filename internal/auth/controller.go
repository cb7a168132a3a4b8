package auth

import (
	"net/http"

	"pdv/internal/domain"
	"pdv/internal/dto"
	apperrors "pdv/internal/errors"
	"pdv/internal/web"

	"go.uber.org/zap"
)

type Issuer interface {
	Issue(user domain.User) (string, error)
}

type Controller struct {
	directory *Directory
	issuer    Issuer
	logger    *zap.Logger
}

func NewController(directory *Directory, issuer Issuer, logger *zap.Logger) *Controller {
	return &Controller{
		directory: directory,
		issuer:    issuer,
		logger:    logger,
	}
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	traceID := web.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.LoginRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	user, ok := c.directory.Authenticate(req.Email, req.Password)
	if !ok {
		logger.Warn("login rejected")
		web.WriteError(w, logger, traceID, apperrors.NewInvalidLoginError())
		return
	}

	token, err := c.issuer.Issue(user)
	if err != nil {
		web.WriteError(w, logger, traceID, apperrors.NewInternalError("issuing token", err))
		return
	}

	logger.Info("operator logged in", zap.Int("userId", user.ID))
	web.WriteJSON(w, logger, http.StatusOK, dto.LoginResponse{Token: token})
}

func (c *Controller) Me(w http.ResponseWriter, r *http.Request) {
	traceID := web.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	identity, ok := IdentityFrom(r.Context())
	if !ok {
		web.WriteError(w, logger, traceID, apperrors.NewCredentialMissingError())
		return
	}

	user, ok := c.directory.Find(identity.UserID)
	if !ok {
		web.WriteError(w, logger, traceID, &apperrors.NotFoundError{
			Message:  "Usuário não encontrado",
			Resource: "user",
			ID:       identity.UserID,
		})
		return
	}

	web.WriteJSON(w, logger, http.StatusOK, dto.MeResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}
