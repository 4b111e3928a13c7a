package handler

import (
	"net/http"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/store"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	Store *store.SiteStore
}

func NewSiteHandler(s *store.SiteStore) *SiteHandler {
	return &SiteHandler{Store: s}
}

type siteReq struct {
	Name     string  `json:"name" binding:"required"`
	Location *string `json:"location"`
	Remark   *string `json:"remark"`
}

func (h *SiteHandler) Create(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var req siteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	site, err := h.Store.Create(req.Name, req.Location, req.Remark, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"site": site})
}

type siteUpdateReq struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Remark   *string `json:"remark"`
}

func (h *SiteHandler) Update(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req siteUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	site, err := h.Store.Update(id, store.SitePatch{
		Name:     req.Name,
		Location: req.Location,
		Remark:   req.Remark,
	}, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"site": site})
}

func (h *SiteHandler) ListActive(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	sites, err := h.Store.ListActive()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": sites, "total": len(sites)})
}

func (h *SiteHandler) ListDeleted(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	sites, err := h.Store.ListDeleted()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": sites, "total": len(sites)})
}

func (h *SiteHandler) SoftDelete(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	site, err := h.Store.SoftDelete(id, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"site": site})
}

func (h *SiteHandler) Restore(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	site, err := h.Store.Restore(id, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"site": site})
}

func (h *SiteHandler) HardDelete(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Store.HardDelete(id, actorFrom(c)); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted permanently"})
}
