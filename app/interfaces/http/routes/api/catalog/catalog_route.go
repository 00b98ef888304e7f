package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murayeeto/HornetHelper/app/domain/catalog"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/responses"
)

type CatalogRoute struct {
	catalogService *catalog.CatalogService
}

func NewCatalogRoute(catalogService *catalog.CatalogService) *CatalogRoute {
	return &CatalogRoute{
		catalogService: catalogService,
	}
}

func (catalogRoute *CatalogRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/categories", catalogRoute.ListCategories)
}

func (catalogRoute *CatalogRoute) RegisterProtectedRouter(router gin.IRouter) {
	router.GET("/home", catalogRoute.GetHome)
	router.GET("/category/:name", catalogRoute.GetCategory)
}

// ListCategories
// @Summary List resource categories
// @Description Returns the fixed category list. IDs are stable across calls.
// @Tags Catalog API
// @Produce json
// @Success 200 {array} catalog.CategorySummary "Categories"
// @Router /api/categories [get]
func (catalogRoute *CatalogRoute) ListCategories(reqCtx *gin.Context) {
	reqCtx.JSON(http.StatusOK, catalogRoute.catalogService.Categories())
}

// GetCategory
// @Summary Get one resource category
// @Tags Catalog API
// @Security BearerAuth
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {object} catalog.Category "Category record"
// @Failure 404 {object} responses.ErrorResponse "Unknown category"
// @Router /api/category/{name} [get]
func (catalogRoute *CatalogRoute) GetCategory(reqCtx *gin.Context) {
	name := reqCtx.Param("name")
	category, ok := catalogRoute.catalogService.FindByName(name)
	if !ok {
		reqCtx.AbortWithStatusJSON(http.StatusNotFound, responses.ErrorResponse{
			Error: "Category not found",
		})
		return
	}
	reqCtx.JSON(http.StatusOK, category)
}

// GetHome
// @Summary Get the home screen record
// @Tags Catalog API
// @Security BearerAuth
// @Produce json
// @Success 200 {object} catalog.HomeContent "Home content"
// @Router /api/home [get]
func (catalogRoute *CatalogRoute) GetHome(reqCtx *gin.Context) {
	reqCtx.JSON(http.StatusOK, catalogRoute.catalogService.Home())
}
