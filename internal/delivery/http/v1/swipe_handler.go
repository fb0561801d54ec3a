package v1

import (
	"net/http"
	"strings"

	"go-swipe-backend/internal/delivery/http/response"
	"go-swipe-backend/internal/domain"
	"go-swipe-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SwipeHandler struct {
	swipeUC domain.SwipeUsecase
	matchUC domain.MatchUsecase
}

func NewSwipeHandler(protected *gin.RouterGroup, swipeUC domain.SwipeUsecase, matchUC domain.MatchUsecase, swipeLimit gin.HandlerFunc) {
	handler := &SwipeHandler{swipeUC: swipeUC, matchUC: matchUC}

	swipes := protected.Group("/swipes")
	{
		swipes.POST("", swipeLimit, handler.Swipe)
		swipes.GET("/potential", handler.Potential)
		swipes.GET("/matches", handler.ListMatches)
		swipes.DELETE("/matches/:matchId", handler.Unmatch)
	}
}

// SwipeRequest carries exactly one of JobOfferID (candidates) or TargetUserID (recruiters).
type SwipeRequest struct {
	JobOfferID   string `json:"jobOfferId" binding:"required_without=TargetUserID,excluded_with=TargetUserID,omitempty,uuid"`
	TargetUserID string `json:"targetUserId" binding:"required_without=JobOfferID,excluded_with=JobOfferID,omitempty,uuid"`
	SwipeType    string `json:"swipeType" binding:"required,swipe_type" example:"LIKE"`
}

func (r SwipeRequest) target() domain.SwipeTarget {
	if r.JobOfferID != "" {
		return domain.OfferTarget{JobOfferID: r.JobOfferID}
	}
	return domain.CandidateTarget{UserID: r.TargetUserID}
}

// Swipe godoc
// @Summary      Record a swipe
// @Description  Candidates swipe on job offers, recruiters on candidates. A LIKE that completes a mutual interest returns the match.
// @Tags         swipes
// @Accept       json
// @Produce      json
// @Param        swipe  body      SwipeRequest  true  "Swipe JSON"
// @Success      201    {object}  response.Response{data=domain.SwipeResult}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Router       /swipes [post]
// @Security     BearerAuth
func (h *SwipeHandler) Swipe(c *gin.Context) {
	var req SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "Invalid swipe request", err)
		return
	}

	liked := strings.EqualFold(strings.TrimSpace(req.SwipeType), "LIKE")
	result, err := h.swipeUC.RecordSwipe(c.Request.Context(), currentUserID(c), req.target(), liked)
	if err != nil {
		_ = c.Error(err)
		return
	}

	message := "Swipe recorded"
	if result.Match != nil {
		message = "It's a match!"
	}
	response.Success(c, http.StatusCreated, message, result)
}

// Potential godoc
// @Summary      Swipe deck
// @Description  Up to 50 active job offers (candidates) or candidates (recruiters) the caller has not swiped yet
// @Tags         swipes
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /swipes/potential [get]
// @Security     BearerAuth
func (h *SwipeHandler) Potential(c *gin.Context) {
	userID := currentUserID(c)

	switch domain.Role(c.GetString(string(domain.KeyUserRole))) {
	case domain.RoleCandidate:
		offers, err := h.swipeUC.ListPotentialOffers(c.Request.Context(), userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Job offers retrieved", offers)
	case domain.RoleRecruiter:
		candidates, err := h.swipeUC.ListPotentialCandidates(c.Request.Context(), userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Candidates retrieved", candidates)
	default:
		_ = c.Error(apperror.Forbidden("Unknown account type"))
	}
}

// ListMatches godoc
// @Summary      List matches
// @Description  Active matches of the caller, newest first, with unread counts
// @Tags         swipes
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.MatchSummary}
// @Failure      401  {object}  response.Response
// @Router       /swipes/matches [get]
// @Security     BearerAuth
func (h *SwipeHandler) ListMatches(c *gin.Context) {
	matches, err := h.matchUC.ListMatches(c.Request.Context(), currentUserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Matches retrieved", matches)
}

// Unmatch godoc
// @Summary      Unmatch
// @Description  Deactivates the match; messages are kept. Unmatching twice is not an error.
// @Tags         swipes
// @Produce      json
// @Param        matchId  path      string  true  "Match ID"
// @Success      200      {object}  response.Response{data=domain.Match}
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /swipes/matches/{matchId} [delete]
// @Security     BearerAuth
func (h *SwipeHandler) Unmatch(c *gin.Context) {
	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}

	match, err := h.matchUC.Unmatch(c.Request.Context(), currentUserID(c), matchID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Match removed", match)
}
