package router

import (
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/audit"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/config"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/handler"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/middleware"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/reconcile"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and mounts the whole API surface.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret, db))

	recorder := audit.NewRecorder(db, cfg.Audit.Strict)

	ledgers := handler.NewLedgerHandler(store.NewLedgerStore(db, recorder))
	protected.POST("/ledgers", ledgers.Create)
	protected.GET("/ledgers", ledgers.ListActive)
	protected.GET("/ledgers/deleted", ledgers.ListDeleted)
	protected.PUT("/ledgers/:id", ledgers.Update)
	protected.DELETE("/ledgers/:id", ledgers.SoftDelete)
	protected.POST("/ledgers/:id/restore", ledgers.Restore)
	protected.DELETE("/ledgers/:id/purge", ledgers.HardDelete)
	protected.POST("/ledger-types", ledgers.EnsureType)

	sites := handler.NewSiteHandler(store.NewSiteStore(db, recorder))
	protected.POST("/sites", sites.Create)
	protected.GET("/sites", sites.ListActive)
	protected.GET("/sites/deleted", sites.ListDeleted)
	protected.PUT("/sites/:id", sites.Update)
	protected.DELETE("/sites/:id", sites.SoftDelete)
	protected.POST("/sites/:id/restore", sites.Restore)
	protected.DELETE("/sites/:id/purge", sites.HardDelete)

	departments := handler.NewDepartmentHandler(store.NewDepartmentStore(db, recorder))
	protected.POST("/departments", departments.Create)
	protected.GET("/departments", departments.ListActive)
	protected.GET("/departments/deleted", departments.ListDeleted)
	protected.PUT("/departments/:id", departments.Update)
	protected.DELETE("/departments/:id", departments.SoftDelete)
	protected.POST("/departments/:id/restore", departments.Restore)
	protected.DELETE("/departments/:id/purge", departments.HardDelete)

	materials := handler.NewMaterialHandler(store.NewMaterialStore(db, recorder))
	protected.POST("/materials", materials.Create)
	protected.GET("/materials", materials.ListActive)
	protected.GET("/materials/deleted", materials.ListDeleted)
	protected.PUT("/materials/:id", materials.Update)
	protected.DELETE("/materials/:id", materials.SoftDelete)
	protected.POST("/materials/:id/restore", materials.Restore)
	protected.DELETE("/materials/:id/purge", materials.HardDelete)

	contracts := handler.NewContractHandler(store.NewContractStore(db, recorder))
	protected.POST("/contracts", contracts.Create)
	protected.GET("/contracts", contracts.List)
	protected.PUT("/contracts/:id", contracts.Update)
	protected.DELETE("/contracts/:id", contracts.SoftDelete)
	protected.POST("/contracts/:id/restore", contracts.Restore)
	protected.DELETE("/contracts/:id/purge", contracts.HardDelete)
	protected.POST("/contracts/doc-ref", contracts.IssueDocRef)

	paymentStore := store.NewPaymentStore(db, recorder)
	payments := handler.NewPaymentHandler(paymentStore)
	protected.POST("/payments", payments.Create)
	protected.GET("/payments", payments.List)
	protected.PUT("/payments/:id", payments.Update)
	protected.DELETE("/payments/:id", payments.SoftDelete)
	protected.POST("/payments/:id/restore", payments.Restore)
	protected.DELETE("/payments/:id/purge", payments.HardDelete)

	vouchers := handler.NewVoucherHandler(store.NewVoucherStore(db, recorder))
	protected.POST("/vouchers", vouchers.Create)
	protected.GET("/vouchers", vouchers.List)
	protected.PUT("/vouchers/:id", vouchers.Update)
	protected.DELETE("/vouchers/:id", vouchers.Delete)

	expenses := handler.NewExpenseHandler(store.NewExpenseStore(db, recorder))
	protected.POST("/expenses", expenses.Create)
	protected.GET("/expenses", expenses.List)
	protected.PUT("/expenses/:id", expenses.Update)
	protected.DELETE("/expenses/:id", expenses.SoftDelete)
	protected.POST("/expenses/:id/restore", expenses.Restore)
	protected.DELETE("/expenses/:id/purge", expenses.HardDelete)

	reports := handler.NewReportHandler(reconcile.NewEngine(db), paymentStore)
	protected.GET("/reports/contractors/:id", reports.ContractorLedger)
	protected.GET("/reports/contractors/:id/export/xlsx", reports.ExportContractorXLSX)
	protected.GET("/reports/site-profit", reports.SiteProfit)
	protected.GET("/reports/site-profit/export/csv", reports.ExportSiteProfitCSV)
	protected.GET("/reports/site-profit/export/xlsx", reports.ExportSiteProfitXLSX)

	audits := handler.NewAuditHandler(db)
	protected.GET("/audits", audits.List)

	return r
}
