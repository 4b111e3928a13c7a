package handler

import (
	"net/http"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/store"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	Store *store.DepartmentStore
}

func NewDepartmentHandler(s *store.DepartmentStore) *DepartmentHandler {
	return &DepartmentHandler{Store: s}
}

type departmentReq struct {
	Name   string  `json:"name" binding:"required"`
	Remark *string `json:"remark"`
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var req departmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	d, err := h.Store.Create(req.Name, req.Remark, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"department": d})
}

type departmentUpdateReq struct {
	Name   *string `json:"name"`
	Remark *string `json:"remark"`
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req departmentUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	d, err := h.Store.Update(id, req.Name, req.Remark, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"department": d})
}

func (h *DepartmentHandler) ListActive(c *gin.Context) {
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

func (h *DepartmentHandler) ListDeleted(c *gin.Context) {
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

func (h *DepartmentHandler) SoftDelete(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := h.Store.SoftDelete(id, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"department": d})
}

func (h *DepartmentHandler) Restore(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := h.Store.Restore(id, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"department": d})
}

func (h *DepartmentHandler) HardDelete(c *gin.Context) {
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
