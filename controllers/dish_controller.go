package controllers

import (
	"strconv"

	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/remote"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/resp"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/services"

	"github.com/gin-gonic/gin"
)

type DishController struct {
	Service *services.DishService
}

func NewDishController(s *services.DishService) *DishController {
	return &DishController{Service: s}
}

// GET /municipalities/:slug/dishes
func (ctl *DishController) List(c *gin.Context) {
	items, err := ctl.Service.ListByMunicipality(c.Param("slug"), parseListParams(c))
	if err != nil {
		resp.Error(c, remote.StatusOf(err), err.Error())
		return
	}
	resp.OK(c, gin.H{"items": items, "total": len(items)})
}

// GET /dishes/:id
func (ctl *DishController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	dish, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, remote.StatusOf(err), err.Error())
		return
	}
	resp.OK(c, dish)
}

// POST /curation/dishes
func (ctl *DishController) Create(c *gin.Context) {
	var in services.DishIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish, err := ctl.Service.Create(&in)
	if err != nil {
		resp.Error(c, remote.StatusOf(err), err.Error())
		return
	}
	resp.Created(c, dish)
}

// PATCH /curation/dishes/:id
func (ctl *DishController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	var in services.DishIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish, err := ctl.Service.Update(uint(id), &in)
	if err != nil {
		resp.Error(c, remote.StatusOf(err), err.Error())
		return
	}
	resp.OK(c, dish)
}

// DELETE /curation/dishes/:id
func (ctl *DishController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	if err := ctl.Service.Delete(uint(id)); err != nil {
		resp.Error(c, remote.StatusOf(err), err.Error())
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
