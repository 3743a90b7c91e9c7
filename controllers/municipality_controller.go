package controllers

import (
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/remote"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/resp"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/services"

	"github.com/gin-gonic/gin"
)

type MunicipalityController struct {
	Service *services.MunicipalityService
}

func NewMunicipalityController(s *services.MunicipalityService) *MunicipalityController {
	return &MunicipalityController{Service: s}
}

// GET /municipalities
func (ctl *MunicipalityController) List(c *gin.Context) {
	ms, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, remote.StatusOf(err), err.Error())
		return
	}
	resp.OK(c, ms)
}
