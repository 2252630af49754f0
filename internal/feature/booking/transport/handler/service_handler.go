// Package handler provides the HTTP handlers for the booking feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"salon_backend/internal/api"
	"salon_backend/internal/feature/booking/domain/entity"
	"salon_backend/internal/feature/booking/usecase"
)

// ServiceUsecase defines the usecase for appointment-service operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ServiceUsecase interface {
	List(ctx context.Context, filter usecase.ListFilter) ([]entity.AppointmentService, error)
	Create(ctx context.Context, in usecase.CreateServiceInput) (*entity.AppointmentService, error)
	GetByID(ctx context.Context, id string) (*entity.AppointmentService, error)
	Update(ctx context.Context, id string, patch usecase.UpdateServiceInput) (*entity.AppointmentService, error)
	SoftDelete(ctx context.Context, id string) (*entity.AppointmentService, error)
}

// ServiceHandler processes HTTP requests for appointment services.
type ServiceHandler struct {
	uc ServiceUsecase
}

// NewServiceHandler creates a new ServiceHandler instance.
func NewServiceHandler(uc ServiceUsecase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// List handles GET /services.
//
// Recognized query filters: isPublic, isRemove ("true"/"false"), shopId, id.
// With no filters every record is returned, soft-deleted ones included.
func (h *ServiceHandler) List(c *gin.Context) {
	filter := usecase.FilterFromQuery(c.Request.URL.Query())

	services, err := h.uc.List(c.Request.Context(), filter)
	if err != nil {
		slog.Error("service list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.NewErrorResponse(api.CodeInternalError, "Internal server error"))
		return
	}

	out := make([]api.ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, toServiceResponse(&services[i]))
	}
	c.JSON(http.StatusOK, api.DataResponse{Data: out})
}

// GetByID handles GET /services/:id. A missing id is not an error: the
// response is 200 with {"data": null}.
func (h *ServiceHandler) GetByID(c *gin.Context) {
	svc, err := h.uc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Error("service lookup failed", "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.NewErrorResponse(api.CodeInternalError, "Internal server error"))
		return
	}
	if svc == nil {
		c.JSON(http.StatusOK, api.DataResponse{Data: nil})
		return
	}
	c.JSON(http.StatusOK, api.DataResponse{Data: toServiceResponse(svc)})
}

// Create handles POST /services (authenticated).
func (h *ServiceHandler) Create(c *gin.Context) {
	var req api.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("service create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.NewErrorResponse(api.CodeValidationError, err.Error()))
		return
	}

	svc, err := h.uc.Create(c.Request.Context(), usecase.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		ShowTime:    req.ShowTime,
		IsPublic:    req.IsPublic,
		ShopID:      req.ShopID,
	})
	if err != nil {
		slog.Error("service create failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.NewErrorResponse(api.CodeInternalError, "Internal server error"))
		return
	}

	slog.Info("service created", "id", svc.ID, "name", svc.Name)
	c.JSON(http.StatusOK, api.DataResponse{Data: toServiceResponse(svc)})
}

// Update handles PUT /services/:id (authenticated). Only fields present in
// the body are patched; a missing id yields {"data": null} and inserts
// nothing.
func (h *ServiceHandler) Update(c *gin.Context) {
	var req api.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("service update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.NewErrorResponse(api.CodeValidationError, err.Error()))
		return
	}

	svc, err := h.uc.Update(c.Request.Context(), c.Param("id"), usecase.UpdateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ShowTime:    req.ShowTime,
		Order:       req.Order,
		IsRemove:    req.IsRemove,
		IsPublic:    req.IsPublic,
		ShopID:      req.ShopID,
	})
	if err != nil {
		slog.Error("service update failed", "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.NewErrorResponse(api.CodeInternalError, "Internal server error"))
		return
	}
	if svc == nil {
		c.JSON(http.StatusOK, api.DataResponse{Data: nil})
		return
	}

	slog.Info("service updated", "id", svc.ID)
	c.JSON(http.StatusOK, api.DataResponse{Data: toServiceResponse(svc)})
}

// Delete handles DELETE /services/:id (authenticated). Soft delete only:
// the record stays readable with isRemove=true. The response confirms the
// id, matching the public API contract.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.uc.SoftDelete(c.Request.Context(), id); err != nil {
		slog.Error("service delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.NewErrorResponse(api.CodeInternalError, "Internal server error"))
		return
	}

	slog.Info("service soft-deleted", "id", id)
	c.JSON(http.StatusOK, api.DataResponse{Data: api.DeletedResponse{ID: id}})
}

// toServiceResponse maps the entity to its wire form.
func toServiceResponse(svc *entity.AppointmentService) api.ServiceResponse {
	return api.ServiceResponse{
		ID:          svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		Price:       svc.Price,
		ShowTime:    svc.ShowTime,
		Order:       svc.Order,
		IsRemove:    svc.IsRemove,
		IsPublic:    svc.IsPublic,
		ShopID:      svc.ShopID,
	}
}
