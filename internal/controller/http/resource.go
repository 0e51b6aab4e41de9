package http

import (
	"errors"
	"net/http"
	"strconv"

	"game-platform/internal/repo"
	"game-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CRUDStore is the uniform repository contract the generic resource handlers
// run against. Entity repositories satisfy it via the embedded store; the
// ones with extra behavior (rating validation, preloads) override the
// relevant methods and still fit.
type CRUDStore[T any, P repo.Model[T]] interface {
	Create(P) error
	Get(uint64) (P, error)
	List() ([]T, error)
	Patch(uint64, map[string]interface{}) (P, error)
	Delete(uint64) error
}

type resource[T any, P repo.Model[T]] struct {
	store   CRUDStore[T, P]
	present func(P) interface{}
	log     *logger.Logger
}

// RegisterResource wires the six standard routes for one collection:
// list, retrieve, create, full update, partial update, delete. Full and
// partial update share apply-provided-fields semantics.
func RegisterResource[T any, P repo.Model[T]](rg *gin.RouterGroup, path string, store CRUDStore[T, P], present func(P) interface{}, log *logger.Logger) {
	r := &resource[T, P]{store: store, present: present, log: log}

	rg.GET("/"+path, r.list)
	rg.GET("/"+path+"/:id", r.get)
	rg.POST("/"+path, r.create)
	rg.PUT("/"+path+"/:id", r.update)
	rg.PATCH("/"+path+"/:id", r.update)
	rg.DELETE("/"+path+"/:id", r.delete)
}

func (r *resource[T, P]) list(c *gin.Context) {
	items, err := r.store.List()
	if err != nil {
		respondError(c, r.log, err)
		return
	}

	out := make([]interface{}, len(items))
	for i := range items {
		out[i] = r.present(P(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (r *resource[T, P]) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := r.store.Get(id)
	if err != nil {
		respondError(c, r.log, err)
		return
	}
	c.JSON(http.StatusOK, r.present(item))
}

func (r *resource[T, P]) create(c *gin.Context) {
	var m T
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := P(&m)
	p.SetPK(0) // keys are store-assigned
	if err := r.store.Create(p); err != nil {
		respondError(c, r.log, err)
		return
	}

	// Re-read so store defaults and expanded relations are in the response.
	created, err := r.store.Get(p.PK())
	if err != nil {
		respondError(c, r.log, err)
		return
	}
	c.JSON(http.StatusCreated, r.present(created))
}

func (r *resource[T, P]) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	fields, ok := bindUpdateFields(c)
	if !ok {
		return
	}

	updated, err := r.store.Patch(id, fields)
	if err != nil {
		respondError(c, r.log, err)
		return
	}
	c.JSON(http.StatusOK, r.present(updated))
}

func (r *resource[T, P]) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := r.store.Delete(id); err != nil {
		respondError(c, r.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// bindUpdateFields decodes a write body into column values, dropping the
// read-only columns.
func bindUpdateFields(c *gin.Context) (map[string]interface{}, bool) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	return fields, true
}

func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, repo.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
