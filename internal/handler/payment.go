package handler

import (
	"net/http"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/store"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Store *store.PaymentStore
}

func NewPaymentHandler(s *store.PaymentStore) *PaymentHandler {
	return &PaymentHandler{Store: s}
}

type paymentReq struct {
	ContractID  uint    `json:"contract_id" binding:"required"`
	PaymentDate string  `json:"payment_date" binding:"required"`
	Amount      string  `json:"amount" binding:"required"`
	Note        *string `json:"note"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var req paymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	date, err := util.ParseDate(req.PaymentDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	amount, err := util.ParseAmount(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	p, err := h.Store.Create(store.PaymentInput{
		ContractID:  req.ContractID,
		PaymentDate: date,
		Amount:      amount,
		Note:        req.Note,
	}, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"payment": p})
}

type paymentUpdateReq struct {
	PaymentDate *string `json:"payment_date"`
	Amount      *string `json:"amount"`
	Note        *string `json:"note"`
}

func (h *PaymentHandler) Update(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req paymentUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	patch := store.PaymentPatch{Note: req.Note}
	if req.PaymentDate != nil {
		date, err := util.ParseDate(*req.PaymentDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		patch.PaymentDate = &date
	}
	if req.Amount != nil {
		amount, err := util.ParseAmount(*req.Amount)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		patch.Amount = &amount
	}
	p, err := h.Store.Update(id, patch, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"payment": p})
}

func (h *PaymentHandler) List(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	siteID, ok := queryID(c, "site_id")
	if !ok {
		return
	}
	contractorID, ok := queryID(c, "contractor_id")
	if !ok {
		return
	}
	contractID, ok := queryID(c, "contract_id")
	if !ok {
		return
	}
	dateRange, ok := queryRange(c)
	if !ok {
		return
	}
	items, err := h.Store.List(store.PaymentFilter{
		SiteID:       siteID,
		ContractorID: contractorID,
		ContractID:   contractID,
		Range:        dateRange,
		Deleted:      c.Query("deleted") == "true",
	})
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": items, "total": len(items)})
}

func (h *PaymentHandler) SoftDelete(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.Store.SoftDelete(id, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"payment": p})
}

func (h *PaymentHandler) Restore(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.Store.Restore(id, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"payment": p})
}

func (h *PaymentHandler) HardDelete(c *gin.Context) {
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
