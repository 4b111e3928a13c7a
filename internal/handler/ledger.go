package handler

import (
	"net/http"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/store"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// LedgerHandler serves the party ledger CRUD and recycle-bin endpoints.
type LedgerHandler struct {
	Store *store.LedgerStore
}

func NewLedgerHandler(s *store.LedgerStore) *LedgerHandler {
	return &LedgerHandler{Store: s}
}

type ledgerReq struct {
	Kind           string  `json:"kind" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Address        *string `json:"address"`
	Mobile         *string `json:"mobile"`
	ContactPerson  *string `json:"contact_person"`
	GSTIN          *string `json:"gstin"`
	SiteID         *uint   `json:"site_id"`
	OpeningBalance string  `json:"opening_balance"`
	Remark         *string `json:"remark"`
}

func (h *LedgerHandler) Create(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var req ledgerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	opening := decimal.Zero
	if req.OpeningBalance != "" {
		var err error
		if opening, err = util.ParseAmount(req.OpeningBalance); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
	}

	l, err := h.Store.Create(models.LedgerKind(req.Kind), req.Name, store.LedgerAttrs{
		Address:        req.Address,
		Mobile:         req.Mobile,
		ContactPerson:  req.ContactPerson,
		GSTIN:          req.GSTIN,
		SiteID:         req.SiteID,
		OpeningBalance: opening,
		Remark:         req.Remark,
	}, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"ledger": l})
}

type ledgerUpdateReq struct {
	Name           *string `json:"name"`
	Address        *string `json:"address"`
	Mobile         *string `json:"mobile"`
	ContactPerson  *string `json:"contact_person"`
	GSTIN          *string `json:"gstin"`
	SiteID         *uint   `json:"site_id"`
	OpeningBalance *string `json:"opening_balance"`
	ClosingBalance *string `json:"closing_balance"`
	Remark         *string `json:"remark"`
}

func (h *LedgerHandler) Update(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ledgerUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	patch := store.LedgerPatch{
		Name:          req.Name,
		Address:       req.Address,
		Mobile:        req.Mobile,
		ContactPerson: req.ContactPerson,
		GSTIN:         req.GSTIN,
		SiteID:        req.SiteID,
		Remark:        req.Remark,
	}
	if req.OpeningBalance != nil {
		d, err := util.ParseAmount(*req.OpeningBalance)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		patch.OpeningBalance = &d
	}
	if req.ClosingBalance != nil {
		d, err := util.ParseAmount(*req.ClosingBalance)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		patch.ClosingBalance = &d
	}

	l, err := h.Store.Update(id, patch, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"ledger": l})
}

// kindFilter reads the optional ?kind= query.
func kindFilter(c *gin.Context) *models.LedgerKind {
	if s := c.Query("kind"); s != "" {
		k := models.LedgerKind(s)
		return &k
	}
	return nil
}

func (h *LedgerHandler) ListActive(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	ledgers, err := h.Store.ListActive(kindFilter(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": ledgers, "total": len(ledgers)})
}

func (h *LedgerHandler) ListDeleted(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	ledgers, err := h.Store.ListDeleted(kindFilter(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": ledgers, "total": len(ledgers)})
}

func (h *LedgerHandler) SoftDelete(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	l, err := h.Store.SoftDelete(id, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"ledger": l})
}

func (h *LedgerHandler) Restore(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	l, err := h.Store.Restore(id, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"ledger": l})
}

func (h *LedgerHandler) HardDelete(c *gin.Context) {
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

type ledgerTypeReq struct {
	Name string `json:"name" binding:"required"`
}

// EnsureType registers a ledger type name; repeat calls are no-ops.
func (h *LedgerHandler) EnsureType(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var req ledgerTypeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	t, err := h.Store.EnsureType(req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"ledger_type": t})
}
