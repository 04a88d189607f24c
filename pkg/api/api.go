// Package api exposes the cipher over HTTP. Keys travel with every request
// and are expanded per request; the server keeps no key state.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"saes-go/pkg/diagram"
	"saes-go/pkg/log"
	"saes-go/pkg/saes"

	"github.com/labstack/echo/v4"
)

// MaxBlocks caps the number of blocks in one request.
const MaxBlocks = 4096

type Server struct {
	Echo *echo.Echo
	addr string
}

type BlockRequest struct {
	Key    string   `json:"key"`
	Blocks []string `json:"blocks"`
	Format string   `json:"format,omitempty"`
}

type BlockResult struct {
	In  string `json:"in"`
	Out string `json:"out"`
}

type BlockResponse struct {
	Key    string        `json:"key"`
	Blocks []BlockResult `json:"blocks"`
}

type KeysResponse struct {
	Key       string   `json:"key"`
	RoundKeys []string `json:"round_keys"`
}

type TablesResponse struct {
	Sub        []int `json:"sub"`
	SubInverse []int `json:"sub_inverse"`
}

func New(addr string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	s := &Server{Echo: e, addr: addr}

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	v1 := e.Group("/v1")
	v1.GET("/tables", s.GetTables)
	v1.GET("/keys/:key", s.GetKeys)
	v1.POST("/encrypt", s.PostEncrypt)
	v1.POST("/decrypt", s.PostDecrypt)
	v1.GET("/trace/:key/:block", s.GetTrace)
	return s
}

// Start blocks until the server stops. http.ErrServerClosed is not an error.
func (s *Server) Start() error {
	log.Info().Str("addr", s.addr).Msg("api listening")
	if err := s.Echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func (s *Server) GetTables(c echo.Context) error {
	res := TablesResponse{Sub: make([]int, 16), SubInverse: make([]int, 16)}
	fwd, inv := saes.Tables()
	for i := range fwd {
		res.Sub[i] = int(fwd[i])
		res.SubInverse[i] = int(inv[i])
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) GetKeys(c echo.Context) error {
	key, err := saes.ParseWord(c.Param("key"))
	if err != nil {
		return badRequest(err)
	}
	format := c.QueryParam("format")
	rk := saes.ExpandKey(key)
	res := KeysResponse{Key: saes.FormatWord(key, format)}
	for _, k := range rk {
		res.RoundKeys = append(res.RoundKeys, saes.FormatWord(k.Word(), format))
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) PostEncrypt(c echo.Context) error {
	return s.blocks(c, saes.DirEncrypt)
}

func (s *Server) PostDecrypt(c echo.Context) error {
	return s.blocks(c, saes.DirDecrypt)
}

func (s *Server) blocks(c echo.Context, dir saes.Direction) error {
	var req BlockRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	key, err := saes.ParseWord(req.Key)
	if err != nil {
		return badRequest(fmt.Errorf("key: %w", err))
	}
	if len(req.Blocks) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no blocks given")
	}
	if len(req.Blocks) > MaxBlocks {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, fmt.Sprintf("at most %d blocks per request", MaxBlocks))
	}

	rk := saes.ExpandKey(key)
	op := saes.Encrypt
	if dir == saes.DirDecrypt {
		op = saes.Decrypt
	}

	res := BlockResponse{Key: saes.FormatWord(key, req.Format), Blocks: make([]BlockResult, 0, len(req.Blocks))}
	for i, b := range req.Blocks {
		in, err := saes.ParseWord(b)
		if err != nil {
			return badRequest(fmt.Errorf("block %d: %w", i, err))
		}
		out := op(in, rk)
		res.Blocks = append(res.Blocks, BlockResult{
			In:  saes.FormatWord(in, req.Format),
			Out: saes.FormatWord(out, req.Format),
		})
	}
	log.Info().Str("op", string(dir)).Str("key", saes.FormatWord(key, "hex")).
		Int("blocks", len(res.Blocks)).Str("remote", c.RealIP()).Msg("api request")
	return c.JSON(http.StatusOK, res)
}

// GetTrace returns the step trace as json (default), dot or svg. Add
// ?decrypt=true to trace decryption.
func (s *Server) GetTrace(c echo.Context) error {
	key, err := saes.ParseWord(c.Param("key"))
	if err != nil {
		return badRequest(fmt.Errorf("key: %w", err))
	}
	block, err := saes.ParseWord(c.Param("block"))
	if err != nil {
		return badRequest(fmt.Errorf("block: %w", err))
	}
	decrypt := false
	if q := c.QueryParam("decrypt"); q != "" {
		if decrypt, err = strconv.ParseBool(q); err != nil {
			return badRequest(err)
		}
	}

	rk := saes.ExpandKey(key)
	tr := saes.EncryptTrace(block, rk)
	if decrypt {
		tr = saes.DecryptTrace(block, rk)
	}

	switch c.QueryParam("format") {
	case "", "json":
		return c.JSON(http.StatusOK, tr)
	case "dot":
		return c.String(http.StatusOK, diagram.DOT(tr))
	case "svg":
		svg, err := diagram.SVG(c.Request().Context(), tr)
		if err != nil {
			return err
		}
		return c.Blob(http.StatusOK, "image/svg+xml", svg)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "format must be json, dot or svg")
	}
}
