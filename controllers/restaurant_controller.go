// controllers/restaurant_controller.go
package controllers

import (
	"strconv"

	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/remote"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/resp"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: s}
}

// GET /municipalities/:slug/restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	items, err := ctl.Service.ListByMunicipality(c.Param("slug"), parseListParams(c))
	if err != nil {
		resp.Error(c, remote.StatusOf(err), err.Error())
		return
	}
	resp.OK(c, gin.H{"items": items, "total": len(items)})
}

// GET /restaurants/:id
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	rest, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, remote.StatusOf(err), err.Error())
		return
	}
	resp.OK(c, rest)
}

// POST /curation/restaurants
func (ctl *RestaurantController) Create(c *gin.Context) {
	var in services.RestaurantIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Service.Create(&in)
	if err != nil {
		resp.Error(c, remote.StatusOf(err), err.Error())
		return
	}
	resp.Created(c, rest)
}

// PATCH /curation/restaurants/:id
func (ctl *RestaurantController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	var in services.RestaurantIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Service.Update(uint(id), &in)
	if err != nil {
		resp.Error(c, remote.StatusOf(err), err.Error())
		return
	}
	resp.OK(c, rest)
}

// DELETE /curation/restaurants/:id
func (ctl *RestaurantController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	if err := ctl.Service.Delete(uint(id)); err != nil {
		resp.Error(c, remote.StatusOf(err), err.Error())
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
