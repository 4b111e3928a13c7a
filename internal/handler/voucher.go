package handler

import (
	"net/http"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/store"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// VoucherHandler serves received-amount vouchers. There is no recycle bin
// here: voucher deletion is permanent.
type VoucherHandler struct {
	Store *store.VoucherStore
}

func NewVoucherHandler(s *store.VoucherStore) *VoucherHandler {
	return &VoucherHandler{Store: s}
}

type voucherReq struct {
	SiteID       uint    `json:"site_id" binding:"required"`
	DepartmentID uint    `json:"department_id" binding:"required"`
	VoucherDate  string  `json:"voucher_date" binding:"required"`
	VoucherNo    *string `json:"voucher_no"`
	ChequeNo     *string `json:"cheque_no"`
	ChequeAmt    string  `json:"cheque_amt" binding:"required"`

	TDS             string `json:"tds"`
	SecurityDeposit string `json:"security_deposit"`
	Royalty         string `json:"royalty"`
	LabourCess      string `json:"labour_cess"`
	OtherDeduction  string `json:"other_deduction"`

	Remark *string `json:"remark"`
}

// parseDeductions normalizes the advisory breakdown fields; blanks become
// null so the UI never round-trips a zero that was not entered.
func parseDeductions(req *voucherReq) (tds, sec, roy, cess, other decimal.NullDecimal, err error) {
	if tds, err = util.ParseOptionalAmount(req.TDS); err != nil {
		return
	}
	if sec, err = util.ParseOptionalAmount(req.SecurityDeposit); err != nil {
		return
	}
	if roy, err = util.ParseOptionalAmount(req.Royalty); err != nil {
		return
	}
	if cess, err = util.ParseOptionalAmount(req.LabourCess); err != nil {
		return
	}
	other, err = util.ParseOptionalAmount(req.OtherDeduction)
	return
}

func (h *VoucherHandler) Create(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var req voucherReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	date, err := util.ParseDate(req.VoucherDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	chequeAmt, err := util.ParseAmount(req.ChequeAmt)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	tds, sec, roy, cess, other, err := parseDeductions(&req)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	v, err := h.Store.Create(store.VoucherInput{
		SiteID:          req.SiteID,
		DepartmentID:    req.DepartmentID,
		VoucherDate:     date,
		VoucherNo:       req.VoucherNo,
		ChequeNo:        req.ChequeNo,
		ChequeAmt:       chequeAmt,
		TDS:             tds,
		SecurityDeposit: sec,
		Royalty:         roy,
		LabourCess:      cess,
		OtherDeduction:  other,
		Remark:          req.Remark,
	}, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"voucher": v})
}

type voucherUpdateReq struct {
	VoucherDate *string `json:"voucher_date"`
	VoucherNo   *string `json:"voucher_no"`
	ChequeNo    *string `json:"cheque_no"`
	ChequeAmt   *string `json:"cheque_amt"`

	TDS             *string `json:"tds"`
	SecurityDeposit *string `json:"security_deposit"`
	Royalty         *string `json:"royalty"`
	LabourCess      *string `json:"labour_cess"`
	OtherDeduction  *string `json:"other_deduction"`

	Remark *string `json:"remark"`
}

func (h *VoucherHandler) Update(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req voucherUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	patch := store.VoucherPatch{
		VoucherNo: req.VoucherNo,
		ChequeNo:  req.ChequeNo,
		Remark:    req.Remark,
	}
	if req.VoucherDate != nil {
		date, err := util.ParseDate(*req.VoucherDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		patch.VoucherDate = &date
	}
	if req.ChequeAmt != nil {
		amt, err := util.ParseAmount(*req.ChequeAmt)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		patch.ChequeAmt = &amt
	}
	for _, f := range []struct {
		in  *string
		out **decimal.NullDecimal
	}{
		{req.TDS, &patch.TDS},
		{req.SecurityDeposit, &patch.SecurityDeposit},
		{req.Royalty, &patch.Royalty},
		{req.LabourCess, &patch.LabourCess},
		{req.OtherDeduction, &patch.OtherDeduction},
	} {
		if f.in == nil {
			continue
		}
		d, err := util.ParseOptionalAmount(*f.in)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		*f.out = &d
	}

	v, err := h.Store.Update(id, patch, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"voucher": v})
}

func (h *VoucherHandler) List(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	siteID, ok := queryID(c, "site_id")
	if !ok {
		return
	}
	departmentID, ok := queryID(c, "department_id")
	if !ok {
		return
	}
	dateRange, ok := queryRange(c)
	if !ok {
		return
	}
	items, err := h.Store.List(store.VoucherFilter{
		SiteID:       siteID,
		DepartmentID: departmentID,
		Range:        dateRange,
	})
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": items, "total": len(items)})
}

func (h *VoucherHandler) Delete(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Store.Delete(id, actorFrom(c)); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted permanently"})
}
