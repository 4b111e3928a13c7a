package handler

import (
	"net/http"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/store"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	Store *store.ExpenseStore
}

func NewExpenseHandler(s *store.ExpenseStore) *ExpenseHandler {
	return &ExpenseHandler{Store: s}
}

type expenseReq struct {
	SiteID         uint    `json:"site_id" binding:"required"`
	ExpenseDate    string  `json:"expense_date" binding:"required"`
	Title          string  `json:"title" binding:"required"`
	Summary        *string `json:"summary"`
	PaymentDetails *string `json:"payment_details"`
	Amount         string  `json:"amount" binding:"required"`
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var req expenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	date, err := util.ParseDate(req.ExpenseDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	amount, err := util.ParseAmount(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	e, err := h.Store.Create(store.ExpenseInput{
		SiteID:         req.SiteID,
		ExpenseDate:    date,
		Title:          req.Title,
		Summary:        req.Summary,
		PaymentDetails: req.PaymentDetails,
		Amount:         amount,
	}, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"expense": e})
}

type expenseUpdateReq struct {
	ExpenseDate    *string `json:"expense_date"`
	Title          *string `json:"title"`
	Summary        *string `json:"summary"`
	PaymentDetails *string `json:"payment_details"`
	Amount         *string `json:"amount"`
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req expenseUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	patch := store.ExpensePatch{
		Title:          req.Title,
		Summary:        req.Summary,
		PaymentDetails: req.PaymentDetails,
	}
	if req.ExpenseDate != nil {
		date, err := util.ParseDate(*req.ExpenseDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		patch.ExpenseDate = &date
	}
	if req.Amount != nil {
		amount, err := util.ParseAmount(*req.Amount)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		patch.Amount = &amount
	}
	e, err := h.Store.Update(id, patch, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"expense": e})
}

func (h *ExpenseHandler) List(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	siteID, ok := queryID(c, "site_id")
	if !ok {
		return
	}
	dateRange, ok := queryRange(c)
	if !ok {
		return
	}
	items, err := h.Store.List(store.ExpenseFilter{
		SiteID:  siteID,
		Range:   dateRange,
		Deleted: c.Query("deleted") == "true",
	})
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": items, "total": len(items)})
}

func (h *ExpenseHandler) SoftDelete(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.Store.SoftDelete(id, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"expense": e})
}

func (h *ExpenseHandler) Restore(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.Store.Restore(id, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"expense": e})
}

func (h *ExpenseHandler) HardDelete(c *gin.Context) {
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
