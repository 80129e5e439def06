// Package http provides the inbound HTTP adapter. Handlers translate
// requests into commands and queries, and domain errors into status codes.
// The acting user is identified by the X-Actor-ID header; authentication
// itself is handled upstream.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ActorHeader carries the identifier of the acting user.
const ActorHeader = "X-Actor-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPurchaseHandler  commands.CreatePurchaseCommandHandler
	approvePurchaseHandler commands.ApprovePurchaseCommandHandler
	rejectPurchaseHandler  commands.RejectPurchaseCommandHandler
	advanceStatusHandler   commands.AdvanceStatusCommandHandler
	cancelPurchaseHandler  commands.CancelPurchaseCommandHandler
	deletePurchaseHandler  commands.DeletePurchaseCommandHandler
	restorePurchaseHandler commands.RestorePurchaseCommandHandler

	// Query handlers
	listPurchasesHandler queries.ListPurchasesQueryHandler
	getPurchaseHandler   queries.GetPurchaseQueryHandler
	getStatisticsHandler queries.GetStatisticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createPurchaseHandler commands.CreatePurchaseCommandHandler,
	approvePurchaseHandler commands.ApprovePurchaseCommandHandler,
	rejectPurchaseHandler commands.RejectPurchaseCommandHandler,
	advanceStatusHandler commands.AdvanceStatusCommandHandler,
	cancelPurchaseHandler commands.CancelPurchaseCommandHandler,
	deletePurchaseHandler commands.DeletePurchaseCommandHandler,
	restorePurchaseHandler commands.RestorePurchaseCommandHandler,
	listPurchasesHandler queries.ListPurchasesQueryHandler,
	getPurchaseHandler queries.GetPurchaseQueryHandler,
	getStatisticsHandler queries.GetStatisticsQueryHandler,
) *Server {
	return &Server{
		createPurchaseHandler:  createPurchaseHandler,
		approvePurchaseHandler: approvePurchaseHandler,
		rejectPurchaseHandler:  rejectPurchaseHandler,
		advanceStatusHandler:   advanceStatusHandler,
		cancelPurchaseHandler:  cancelPurchaseHandler,
		deletePurchaseHandler:  deletePurchaseHandler,
		restorePurchaseHandler: restorePurchaseHandler,
		listPurchasesHandler:   listPurchasesHandler,
		getPurchaseHandler:     getPurchaseHandler,
		getStatisticsHandler:   getStatisticsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/purchases", s.CreatePurchase)
	v1.GET("/purchases", s.ListPurchases)
	v1.GET("/purchases/statistics", s.GetStatistics)
	v1.GET("/purchases/:id", s.GetPurchase)
	v1.POST("/purchases/:id/approve", s.ApprovePurchase)
	v1.POST("/purchases/:id/reject", s.RejectPurchase)
	v1.POST("/purchases/:id/status", s.AdvanceStatus)
	v1.POST("/purchases/:id/cancel", s.CancelPurchase)
	v1.DELETE("/purchases/:id", s.DeletePurchase)
	v1.POST("/purchases/:id/restore", s.RestorePurchase)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreatePurchase handles POST /api/v1/purchases.
func (s *Server) CreatePurchase(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}

	var req CreatePurchaseRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoneyFromFloat(req.Price)
	if err != nil {
		return writeError(ctx, err)
	}
	shipping, err := kernel.NewMoneyFromFloat(req.ShippingCost)
	if err != nil {
		return writeError(ctx, err)
	}
	urgency, err := purchase.UrgencyFromString(req.Urgency)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreatePurchaseCommand(actor, purchase.Draft{
		ItemName:     req.ItemName,
		VendorName:   req.VendorName,
		ItemLink:     req.ItemLink,
		Purpose:      req.Purpose,
		Notes:        req.Notes,
		Quantity:     req.Quantity,
		Price:        price,
		ShippingCost: shipping,
		Subteam:      req.Subteam,
		Subproject:   req.Subproject,
		Urgency:      urgency,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.createPurchaseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatePurchaseResponse{ID: order.ID()})
}

// ListPurchases handles GET /api/v1/purchases.
func (s *Server) ListPurchases(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	perPage, _ := strconv.Atoi(ctx.QueryParam("per_page"))
	includeDeleted, _ := strconv.ParseBool(ctx.QueryParam("include_deleted"))

	query, err := queries.NewListPurchasesQuery(actor, queries.ListPurchasesFilter{
		Status:         ctx.QueryParam("status"),
		ApprovalStatus: ctx.QueryParam("approval_status"),
		Subteam:        ctx.QueryParam("subteam"),
		Search:         ctx.QueryParam("search"),
		IncludeDeleted: includeDeleted,
		Page:           page,
		PerPage:        perPage,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.listPurchasesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]PurchaseSummaryResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = toSummaryResponse(item)
	}

	return ctx.JSON(http.StatusOK, ListPurchasesResponse{
		Items:      items,
		Total:      resp.Total,
		Page:       resp.Page,
		PerPage:    resp.PerPage,
		TotalPages: resp.TotalPages,
	})
}

// GetPurchase handles GET /api/v1/purchases/:id.
func (s *Server) GetPurchase(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	id, err := purchaseID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPurchaseQuery(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getPurchaseHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDetailResponse(resp))
}

// GetStatistics handles GET /api/v1/purchases/statistics.
func (s *Server) GetStatistics(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetStatisticsQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatisticsResponse{
		TotalOrders:     resp.TotalOrders,
		PendingApproval: resp.PendingApproval,
		ApprovedOrders:  resp.ApprovedOrders,
		PurchasedOrders: resp.PurchasedOrders,
		ShippedOrders:   resp.ShippedOrders,
		ArrivedOrders:   resp.ArrivedOrders,
		TotalValue:      resp.TotalValue.Float64(),
	})
}

// ApprovePurchase handles POST /api/v1/purchases/:id/approve.
func (s *Server) ApprovePurchase(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	id, err := purchaseID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewApprovePurchaseCommand(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.approvePurchaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectPurchase handles POST /api/v1/purchases/:id/reject.
func (s *Server) RejectPurchase(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	id, err := purchaseID(ctx)
	if err != nil {
		return err
	}

	var req RejectPurchaseRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRejectPurchaseCommand(actor, id, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectPurchaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceStatus handles POST /api/v1/purchases/:id/status.
func (s *Server) AdvanceStatus(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	id, err := purchaseID(ctx)
	if err != nil {
		return err
	}

	var req AdvanceStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := purchase.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	var photo *kernel.ArtifactRef
	if req.ArrivalPhotoID != "" {
		ref, refErr := kernel.ArtifactRefFromString(req.ArrivalPhotoID)
		if refErr != nil {
			return writeError(ctx, refErr)
		}
		photo = &ref
	}

	cmd, err := commands.NewAdvanceStatusCommand(actor, id, target, photo)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.advanceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelPurchase handles POST /api/v1/purchases/:id/cancel.
func (s *Server) CancelPurchase(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	id, err := purchaseID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelPurchaseCommand(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelPurchaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeletePurchase handles DELETE /api/v1/purchases/:id.
func (s *Server) DeletePurchase(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	id, err := purchaseID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeletePurchaseCommand(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deletePurchaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RestorePurchase handles POST /api/v1/purchases/:id/restore.
func (s *Server) RestorePurchase(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	id, err := purchaseID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRestorePurchaseCommand(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.restorePurchaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func actorID(ctx echo.Context) (int64, error) {
	raw := ctx.Request().Header.Get(ActorHeader)
	if raw == "" {
		return 0, ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "missing " + ActorHeader + " header",
		})
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "invalid " + ActorHeader + " header",
		})
	}
	return id, nil
}

func purchaseID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest(ctx, "invalid purchase id")
	}
	return id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrAuthorizationDenied):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrMissingArtifact):
		status = http.StatusUnprocessableEntity
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
