package handler

import (
	"net/http"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/store"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContractHandler serves labour contract endpoints. The agreement PDF is
// uploaded elsewhere; this handler only issues and stores the opaque
// document reference.
type ContractHandler struct {
	Store *store.ContractStore
}

func NewContractHandler(s *store.ContractStore) *ContractHandler {
	return &ContractHandler{Store: s}
}

type contractReq struct {
	ContractorLedgerID uint    `json:"contractor_ledger_id" binding:"required"`
	SiteID             uint    `json:"site_id" binding:"required"`
	Title              *string `json:"title"`
	AgreedValue        string  `json:"agreed_value" binding:"required"`
	AgreementDocRef    *string `json:"agreement_doc_ref"`
}

func (h *ContractHandler) Create(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var req contractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	agreed, err := util.ParseAmount(req.AgreedValue)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	contract, err := h.Store.Create(store.ContractInput{
		ContractorLedgerID: req.ContractorLedgerID,
		SiteID:             req.SiteID,
		Title:              req.Title,
		AgreedValue:        agreed,
		AgreementDocRef:    req.AgreementDocRef,
	}, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"contract": contract})
}

type contractUpdateReq struct {
	Title           *string `json:"title"`
	AgreedValue     *string `json:"agreed_value"`
	AgreementDocRef *string `json:"agreement_doc_ref"`
}

func (h *ContractHandler) Update(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req contractUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	patch := store.ContractPatch{
		Title:           req.Title,
		AgreementDocRef: req.AgreementDocRef,
	}
	if req.AgreedValue != nil {
		d, err := util.ParseAmount(*req.AgreedValue)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		patch.AgreedValue = &d
	}
	contract, err := h.Store.Update(id, patch, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"contract": contract})
}

func (h *ContractHandler) List(c *gin.Context) {
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
	items, err := h.Store.List(store.ContractFilter{
		SiteID:       siteID,
		ContractorID: contractorID,
		Deleted:      c.Query("deleted") == "true",
	})
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": items, "total": len(items)})
}

func (h *ContractHandler) SoftDelete(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	contract, err := h.Store.SoftDelete(id, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"contract": contract})
}

func (h *ContractHandler) Restore(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	contract, err := h.Store.Restore(id, actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"contract": contract})
}

func (h *ContractHandler) HardDelete(c *gin.Context) {
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

// IssueDocRef hands out a fresh opaque reference the upload service tags
// the agreement file with; the caller passes it back on create/update.
func (h *ContractHandler) IssueDocRef(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	util.Success(c, util.Response{"doc_ref": "agr-" + uuid.NewString()})
}
