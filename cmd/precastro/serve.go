package main

import (
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/openastro/precastro/precastro"
)

func serveCommand(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	addr := fs.String("addr", "", "listen address (defaults to PRECASTRO_ADDR, then :8080)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolved := *addr
	if resolved == "" {
		resolved = os.Getenv("PRECASTRO_ADDR")
	}
	if resolved == "" {
		resolved = ":8080"
	}

	mod, cleanup, err := buildModule()
	if err != nil {
		return err
	}
	defer cleanup()

	return newRouter(mod).Run(resolved)
}

func newRouter(mod *precastro.Module) *gin.Engine {
	router := gin.Default()

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/v1/functions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"functions": mod.Builtins()})
	})

	router.POST("/v1/call/:name", callHandler(mod))

	return router
}

type callRequest struct {
	Args []json.Number `json:"args"`
}

func callHandler(mod *precastro.Module) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req callRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		args := make([]precastro.Value, len(req.Args))
		for i, n := range req.Args {
			if v, err := n.Int64(); err == nil {
				args[i] = precastro.NewInt(v)
				continue
			}
			f, err := n.Float64()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "argument " + n.String() + " is not numeric"})
				return
			}
			args[i] = precastro.NewFloat(f)
		}

		result, err := mod.Call(c.Request.Context(), c.Param("name"), args)
		if err != nil {
			switch {
			case errors.Is(err, precastro.ErrUnknownFunction):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, precastro.ErrBadArgs):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"result": resultPayload(result)})
	}
}

func resultPayload(v precastro.Value) any {
	switch v.Kind() {
	case precastro.KindTuple:
		return v.Tuple()
	case precastro.KindInt:
		return v.Int()
	case precastro.KindFloat:
		return v.Float()
	case precastro.KindString:
		return v.Str()
	default:
		return nil
	}
}
