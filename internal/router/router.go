package router

import (
	"net/http"

	"github.com/Miki0195/delavnice-backend/internal/domain"
	"github.com/Miki0195/delavnice-backend/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateListing(c *ginext.Context)
	SubmitListing(c *ginext.Context)
	EditListing(c *ginext.Context)
	RenewListing(c *ginext.Context)
	ApproveListing(c *ginext.Context)
	DenyListing(c *ginext.Context)
	GetListing(c *ginext.Context)
	ListActiveListings(c *ginext.Context)
	ListPendingListings(c *ginext.Context)
	ListProviderListings(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	ApproveReservation(c *ginext.Context)
	RejectReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	ListListingReservations(c *ginext.Context)
	ListSchoolReservations(c *ginext.Context)
}

// InitRouter wires routes with role gates. The auth middleware is passed in
// so tests can substitute a principal injector.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public browsing: active, published listings only.
		api.GET("/listings", h.ListActiveListings)
		api.GET("/listings/:id", h.GetListing)

		authed := api.Group("", auth)
		{
			provider := authed.Group("", middleware.RequireRole(domain.RoleProvider, domain.RoleAdmin))
			{
				provider.POST("/listings", h.CreateListing)
				provider.POST("/listings/:id/submit", h.SubmitListing)
				provider.POST("/listings/:id/edit", h.EditListing)
				provider.POST("/listings/:id/renew", h.RenewListing)
				provider.GET("/provider/listings", h.ListProviderListings)
				provider.GET("/listings/:id/reservations", h.ListListingReservations)
				provider.POST("/reservations/:id/approve", h.ApproveReservation)
				provider.POST("/reservations/:id/reject", h.RejectReservation)
			}

			admin := authed.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
			{
				admin.GET("/listings/pending", h.ListPendingListings)
				admin.POST("/listings/:id/approve", h.ApproveListing)
				admin.POST("/listings/:id/deny", h.DenyListing)
			}

			school := authed.Group("", middleware.RequireRole(domain.RoleSchool, domain.RoleAdmin))
			{
				school.POST("/reservations", h.CreateReservation)
				school.POST("/reservations/:id/cancel", h.CancelReservation)
				school.GET("/school/reservations", h.ListSchoolReservations)
			}
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
