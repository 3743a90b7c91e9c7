package controllers

import (
	"strings"

	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/listquery"
	"github.com/gin-gonic/gin"
)

// parseListParams reads the query pipeline knobs off the request:
// q, fields (comma list of description/ingredients/municipality; name is
// always searched), category, price, tags (comma list), spice, sort.
func parseListParams(c *gin.Context) listquery.Params {
	p := listquery.Params{
		Query: c.Query("q"),
		Sort:  c.DefaultQuery("sort", listquery.SortPopularity),
	}

	for _, f := range splitCSV(c.Query("fields")) {
		switch strings.ToLower(f) {
		case "description":
			p.Fields.Description = true
		case "ingredients":
			p.Fields.Ingredients = true
		case "municipality":
			p.Fields.Municipality = true
		}
	}

	p.Category = c.Query("category")
	p.Price = c.Query("price")
	p.Tags = splitCSV(c.Query("tags"))
	p.Spice = c.Query("spice")
	return p
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
