package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	domaincatalog "github.com/murayeeto/HornetHelper/app/domain/catalog"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/routes/api/catalog"
)

func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	route := catalog.NewCatalogRoute(domaincatalog.NewCatalogService())
	apiRouter := router.Group("/api")
	route.RegisterRouter(apiRouter)
	route.RegisterProtectedRouter(apiRouter)
	return router
}

func TestListCategories(t *testing.T) {
	router := newCatalogRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var summaries []domaincatalog.CategorySummary
	if err := json.Unmarshal(recorder.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(summaries) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(summaries))
	}
	for i, summary := range summaries {
		if summary.ID != i+1 {
			t.Fatalf("category IDs must be stable and ordered, got %+v", summaries)
		}
	}
	if summaries[0].Name != "Tutoring" {
		t.Fatalf("unexpected first category: %+v", summaries[0])
	}
}

func TestGetCategory(t *testing.T) {
	router := newCatalogRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/category/study-groups", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var category domaincatalog.Category
	if err := json.Unmarshal(recorder.Body.Bytes(), &category); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if category.ID != 2 || category.Name != "Study Groups" {
		t.Fatalf("unexpected category: %+v", category)
	}
	if category.Description == "" {
		t.Fatal("expected a description")
	}
}

func TestGetCategoryUnknown(t *testing.T) {
	router := newCatalogRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/category/underwater-basket-weaving", nil))

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["error"] != "Category not found" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestGetHome(t *testing.T) {
	router := newCatalogRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/home", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var home domaincatalog.HomeContent
	if err := json.Unmarshal(recorder.Body.Bytes(), &home); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if home.Title == "" || len(home.Features) == 0 {
		t.Fatalf("unexpected home content: %+v", home)
	}
}
