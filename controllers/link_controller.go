package controllers

import (
	"errors"
	"strconv"

	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/opgate"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/remote"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/resp"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/services"

	"github.com/gin-gonic/gin"
)

type LinkController struct {
	Service *services.LinkService
}

func NewLinkController(s *services.LinkService) *LinkController {
	return &LinkController{Service: s}
}

type linkReq struct {
	DishID       uint   `json:"dishId" binding:"required"`
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	PriceNote    string `json:"priceNote"`
	Availability string `json:"availability"`
}

// POST /curation/links
func (ctl *LinkController) Create(c *gin.Context) {
	var req linkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	meta := services.LinkMeta{PriceNote: req.PriceNote, Availability: req.Availability}
	if err := ctl.Service.Link(req.DishID, req.RestaurantID, meta); err != nil {
		writeLinkError(c, err)
		return
	}
	resp.OK(c, gin.H{"linked": true})
}

// DELETE /curation/links/:dishId/:restaurantId
func (ctl *LinkController) Delete(c *gin.Context) {
	dishID, err := strconv.Atoi(c.Param("dishId"))
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	restID, err := strconv.Atoi(c.Param("restaurantId"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	if err := ctl.Service.Unlink(uint(dishID), uint(restID)); err != nil {
		writeLinkError(c, err)
		return
	}
	resp.OK(c, gin.H{"unlinked": true})
}

type bulkLinkReq struct {
	DishIDs       []uint `json:"dishIds" binding:"required"`
	RestaurantIDs []uint `json:"restaurantIds" binding:"required"`
	PriceNote     string `json:"priceNote"`
	Availability  string `json:"availability"`
}

// POST /curation/links/bulk — always 200 with the all-settled aggregate,
// even when some pairs failed, so the client can retry just those.
func (ctl *LinkController) Bulk(c *gin.Context) {
	var req bulkLinkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	meta := services.LinkMeta{PriceNote: req.PriceNote, Availability: req.Availability}
	result, err := ctl.Service.BulkLink(req.DishIDs, req.RestaurantIDs, meta)
	if err != nil {
		if errors.Is(err, opgate.ErrInFlight) {
			resp.TooManyRequests(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, result)
}

func writeLinkError(c *gin.Context, err error) {
	if errors.Is(err, opgate.ErrInFlight) {
		resp.TooManyRequests(c, err.Error())
		return
	}
	resp.Error(c, remote.StatusOf(err), err.Error())
}

// GET /dishes/:id/restaurants
func (ctl *LinkController) RestaurantsForDish(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	rests, err := ctl.Service.ListRestaurants(uint(id))
	if err != nil {
		resp.Error(c, remote.StatusOf(err), err.Error())
		return
	}
	resp.OK(c, gin.H{"items": rests, "total": len(rests)})
}

// GET /restaurants/:id/dishes
func (ctl *LinkController) DishesForRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	dishes, err := ctl.Service.ListDishes(uint(id))
	if err != nil {
		resp.Error(c, remote.StatusOf(err), err.Error())
		return
	}
	resp.OK(c, gin.H{"items": dishes, "total": len(dishes)})
}
