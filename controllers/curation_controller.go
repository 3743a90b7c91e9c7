package controllers

import (
	"errors"
	"strconv"

	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/opgate"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/ranking"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/remote"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/resp"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/services"

	"github.com/gin-gonic/gin"
)

type CurationController struct {
	Service *services.RankService
}

func NewCurationController(s *services.RankService) *CurationController {
	return &CurationController{Service: s}
}

// rankReq: rank null clears; selecting the held rank again also clears
// (toggle). confirm answers a prior 409 conflict; decline turns it into
// an explicit no-op.
type rankReq struct {
	Rank    *int `json:"rank"`
	Confirm bool `json:"confirm"`
	Decline bool `json:"decline"`
}

func (r rankReq) decision() ranking.Decision {
	switch {
	case r.Confirm:
		return ranking.Approved
	case r.Decline:
		return ranking.Declined
	default:
		return ranking.Unasked
	}
}

// PATCH /curation/dishes/:id/rank
func (ctl *CurationController) SetDishRank(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	var req rankReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, err := ctl.Service.SetDishRank(uint(id), req.Rank, req.decision())
	if err != nil {
		writeRankError(c, err)
		return
	}

	switch result.Outcome {
	case services.RankConfirm:
		resp.Conflict(c, result.Conflict)
	case services.RankDeclined:
		resp.OK(c, gin.H{"declined": true})
	default:
		resp.OK(c, result)
	}
}

// PATCH /curation/restaurants/:id/rank
func (ctl *CurationController) SetRestaurantRank(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	var req rankReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, err := ctl.Service.SetRestaurantRank(uint(id), req.Rank, req.decision())
	if err != nil {
		writeRankError(c, err)
		return
	}

	switch result.Outcome {
	case services.RankConfirm:
		resp.Conflict(c, result.Conflict)
	case services.RankDeclined:
		resp.OK(c, gin.H{"declined": true})
	default:
		resp.OK(c, result)
	}
}

func writeRankError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ranking.ErrInvalidRank):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, opgate.ErrInFlight):
		resp.TooManyRequests(c, err.Error())
	default:
		resp.Error(c, remote.StatusOf(err), err.Error())
	}
}
