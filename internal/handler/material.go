package handler

import (
	"net/http"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/store"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type MaterialHandler struct {
	Store *store.MaterialStore
}

func NewMaterialHandler(s *store.MaterialStore) *MaterialHandler {
	return &MaterialHandler{Store: s}
}

type materialReq struct {
	Name        string  `json:"name" binding:"required"`
	Unit        string  `json:"unit" binding:"required"`
	RatePerUnit string  `json:"rate_per_unit"`
	Remark      *string `json:"remark"`
}

func (h *MaterialHandler) Create(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var req materialReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	rate, err := util.ParseOptionalAmount(req.RatePerUnit)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	m, err := h.Store.Create(req.Name, req.Unit, rate, req.Remark, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"material": m})
}

type materialUpdateReq struct {
	Name        *string `json:"name"`
	Unit        *string `json:"unit"`
	RatePerUnit *string `json:"rate_per_unit"`
	Remark      *string `json:"remark"`
}

func (h *MaterialHandler) Update(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req materialUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	patch := store.MaterialPatch{
		Name:   req.Name,
		Unit:   req.Unit,
		Remark: req.Remark,
	}
	if req.RatePerUnit != nil {
		rate, err := util.ParseOptionalAmount(*req.RatePerUnit)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		patch.RatePerUnit = &rate
	}
	m, err := h.Store.Update(id, patch, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"material": m})
}

func (h *MaterialHandler) ListActive(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	items, err := h.Store.ListActive()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": items, "total": len(items)})
}

func (h *MaterialHandler) ListDeleted(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	items, err := h.Store.ListDeleted()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": items, "total": len(items)})
}

func (h *MaterialHandler) SoftDelete(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.Store.SoftDelete(id, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"material": m})
}

func (h *MaterialHandler) Restore(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.Store.Restore(id, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"material": m})
}

func (h *MaterialHandler) HardDelete(c *gin.Context) {
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
