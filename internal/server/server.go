// Package server exposes table documents over a local HTTP API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gridctl/internal/grid"
	"gridctl/internal/system"
	"gridctl/internal/table"
	appver "gridctl/internal/version"
)

type Server struct {
	Addr string
}

// Start serves until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	r := s.router()
	srv := &http.Server{Addr: s.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("api server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})

	api.GET("/tables", listTables)
	api.GET("/tables/:name", getTable)
	api.POST("/tables/:name/rows", appendRows)
	api.PATCH("/tables/:name/cells", patchCells)
	api.DELETE("/tables/:name/rows", deleteRows)
	return r
}

func listTables(c *gin.Context) {
	paths, err := table.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, table.DocumentName(p))
	}
	c.JSON(http.StatusOK, gin.H{"tables": names})
}

// openNamed loads a managed document plus a mutator that persists back to
// the same path. The API sees rows in record order; visual indices in the
// request map 1:1 onto records.
func openNamed(c *gin.Context) (*table.View, *table.Mutator, bool) {
	name := c.Param("name")
	path, err := table.DefaultPath(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	doc, err := table.Load(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	if len(doc.Columns) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "table not found: " + name})
		return nil, nil, false
	}
	view := table.NewView(doc)
	mut := table.NewMutator(view, func(d *table.Document) error {
		return table.Save(path, d)
	})
	return view, mut, true
}

func getTable(c *gin.Context) {
	view, _, ok := openNamed(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, view.Document())
}

func appendRows(c *gin.Context) {
	var req struct {
		Count int `json:"count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Count < 1 {
		req.Count = 1
	}
	view, mut, ok := openNamed(c)
	if !ok {
		return
	}
	if err := mut.AppendRows(c.Request.Context(), req.Count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": view.RowCount()})
}

func patchCells(c *gin.Context) {
	var req struct {
		Updates []struct {
			Row      int    `json:"row"`
			ColumnID string `json:"columnId"`
			Value    any    `json:"value"`
		} `json:"updates"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, mut, ok := openNamed(c)
	if !ok {
		return
	}
	updates := make([]grid.CellUpdate, 0, len(req.Updates))
	for _, u := range req.Updates {
		updates = append(updates, grid.CellUpdate{Row: u.Row, ColumnID: u.ColumnID, Value: u.Value})
	}
	if err := mut.UpdateCells(c.Request.Context(), updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": len(updates)})
}

func deleteRows(c *gin.Context) {
	var req struct {
		Rows []int `json:"rows"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, mut, ok := openNamed(c)
	if !ok {
		return
	}
	if err := mut.DeleteRows(c.Request.Context(), req.Rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": view.RowCount()})
}
