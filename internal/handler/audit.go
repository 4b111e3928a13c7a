package handler

import (
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/config"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuditHandler exposes the append-only audit trail, read-only.
type AuditHandler struct {
	db *gorm.DB
}

func NewAuditHandler(db *gorm.DB) *AuditHandler {
	return &AuditHandler{db: db}
}

// List returns audit entries newest first, filterable by module, record_id,
// action and date range.
func (h *AuditHandler) List(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	page, size, offset := pagination(c, config.Get().App.PageSize)

	q := h.db.Model(&models.AuditEntry{})
	if m := c.Query("module"); m != "" {
		q = q.Where("module = ?", m)
	}
	if recordID, ok := queryID(c, "record_id"); !ok {
		return
	} else if recordID != nil {
		q = q.Where("record_id = ?", *recordID)
	}
	if a := c.Query("action"); a != "" {
		q = q.Where("action = ?", a)
	}
	r, ok := queryRange(c)
	if !ok {
		return
	}
	if r.From != nil {
		q = q.Where("created_at >= ?", *r.From)
	}
	if r.To != nil {
		q = q.Where("created_at < ?", r.To.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		fail(c, err)
		return
	}

	var entries []models.AuditEntry
	if err := q.Order("created_at DESC, id DESC").
		Limit(size).Offset(offset).
		Find(&entries).Error; err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"items":     entries,
		"total":     total,
		"page":      page,
		"page_size": size,
	})
}
