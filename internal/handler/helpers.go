package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/audit"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/store"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user placed in context by the auth
// middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// actorFrom builds the audit actor for the current request.
func actorFrom(c *gin.Context) audit.Actor {
	a := audit.Actor{IP: c.ClientIP()}
	if user, ok := currentUser(c); ok {
		a.UserID = &user.ID
		a.Name = user.Username
	}
	return a
}

// requireUser aborts with an auth error when no user is in context.
func requireUser(c *gin.Context) (*models.User, bool) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
	}
	return user, ok
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// queryID parses an optional positive-integer query parameter.
func queryID(c *gin.Context, name string) (*uint, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid "+name)
		return nil, false
	}
	u := uint(id)
	return &u, true
}

// queryRange parses optional start/end date bounds (YYYY-MM-DD, inclusive).
func queryRange(c *gin.Context) (store.DateRange, bool) {
	var r store.DateRange
	if s := c.Query("start"); s != "" {
		t, err := util.ParseDate(s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "start date must be YYYY-MM-DD")
			return r, false
		}
		r.From = &t
	}
	if s := c.Query("end"); s != "" {
		t, err := util.ParseDate(s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "end date must be YYYY-MM-DD")
			return r, false
		}
		r.To = &t
	}
	return r, true
}

// pagination parses page/page_size, capping page_size at 100.
func pagination(c *gin.Context, defaultSize int) (page, size, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultSize)))
	if size <= 0 || size > 100 {
		size = defaultSize
	}
	return page, size, (page - 1) * size
}

// fail maps a core error kind to the uniform error envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrValidation), errors.Is(err, store.ErrActiveRecord):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
	case errors.Is(err, store.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, err.Error())
	case errors.Is(err, store.ErrDeletedRecord):
		util.Error(c, http.StatusConflict, util.CodeDeleted, err.Error())
	case errors.Is(err, store.ErrDuplicateName):
		util.Error(c, http.StatusConflict, util.CodeDuplicate, err.Error())
	case errors.Is(err, store.ErrOrphanReference):
		util.Error(c, http.StatusUnprocessableEntity, util.CodeOrphan, err.Error())
	case errors.Is(err, audit.ErrWriteFailure):
		util.Error(c, http.StatusInternalServerError, util.CodeAuditFail, err.Error())
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "operation failed, please retry")
	}
}
