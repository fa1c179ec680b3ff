package api

import (
	"net/http"

	authHandler "agency-server/internal/auth/handler"
	bonusHandler "agency-server/internal/bonus/handler"
	importHandler "agency-server/internal/creatorimport/handler"
	talentsHandler "agency-server/internal/talents/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router         *gin.RouterGroup
	authHandler    authHandler.Handler
	importHandler  importHandler.Handler
	talentsHandler talentsHandler.Handler
	bonusHandler   bonusHandler.Handler
	lookupLimiter  gin.HandlerFunc
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	importHandler importHandler.Handler,
	talentsHandler talentsHandler.Handler,
	bonusHandler bonusHandler.Handler,
	lookupLimiter gin.HandlerFunc,
) API {
	return API{
		router:         router,
		authHandler:    authHandler,
		importHandler:  importHandler,
		talentsHandler: talentsHandler,
		bonusHandler:   bonusHandler,
		lookupLimiter:  lookupLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")

	publicGroup := apiGroup.Group("/public")
	{
		publicGroup.GET("/bonus", a.lookupLimiter, a.bonusHandler.HandleLookup)
	}

	adminGroup := apiGroup.Group("/admin", a.authHandler.HandleJWTMiddleware)
	{
		adminGroup.GET("/me", a.authHandler.HandleMe)

		adminGroup.POST("/imports/creators", a.importHandler.HandleImportCreators)
		adminGroup.POST("/imports/performance", a.importHandler.HandleImportPerformance)
		adminGroup.GET("/imports", a.importHandler.HandleListRuns)

		adminGroup.GET("/talents", a.talentsHandler.HandleSearch)
		adminGroup.GET("/talents/export", a.talentsHandler.HandleExport)
		adminGroup.GET("/talents/:id/history", a.talentsHandler.HandleHistory)
		adminGroup.POST("/talents/:id/whatsapp", a.talentsHandler.HandleWhatsApp)

		adminGroup.GET("/bonus/rules", a.bonusHandler.HandleGetRules)
		adminGroup.PUT("/bonus/rules", a.bonusHandler.HandleUpdateRules)
		adminGroup.GET("/bonus/report", a.bonusHandler.HandleReport)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
