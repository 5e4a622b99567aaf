package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"noise-go/pkg/log"
	"noise-go/pkg/mapbuild"
	"noise-go/pkg/noise"
	"noise-go/pkg/permtable"
	"noise-go/pkg/pipeviz"
	"noise-go/pkg/profile"
	"noise-go/pkg/render"
	"noise-go/pkg/seed"
	"noise-go/pkg/store"
)

const (
	tileSize = 256
	maxZoom  = 16
)

// Server exposes the configured noise profiles and the grid store over HTTP.
// Samplers and permutation tables are immutable once built, so cached
// instances are shared across requests without locking.
type Server struct {
	Api   *echo.Echo
	cfg   *profile.Config
	store *store.Store

	samplers sync.Map // profile name -> noise.Sampler
	tables   sync.Map // seed value -> *permtable.Table
}

func New(cfg *profile.Config, st *store.Store) *Server {
	api := echo.New()
	api.HideBanner = true
	api.HidePort = true

	s := &Server{
		Api:   api,
		cfg:   cfg,
		store: st,
	}
	api.Use(requestLogger)
	api.GET("/healthz", s.GetHealth)
	api.GET("/v1/profiles", s.GetProfiles)
	api.GET("/v1/table/:seed", s.GetTable)
	api.GET("/v1/map/:profile", s.GetMap)
	api.GET("/v1/tile/:profile/:zoom/:x/:y", s.GetTile)
	api.GET("/v1/pipeline/:profile", s.GetPipeline)
	api.GET("/v1/grids", s.GetGrids)
	api.GET("/v1/grid/:name", s.GetGrid)
	return s
}

func (s *Server) Run(addr string) error {
	log.Info().Str("addr", addr).Msg("noised listening")
	if err := s.Api.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) GetHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

type profileSummary struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Seed   uint32 `json:"seed"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) GetProfiles(c echo.Context) error {
	summaries := make([]profileSummary, 0, len(s.cfg.Profiles))
	for name, p := range s.cfg.Profiles {
		summaries = append(summaries, profileSummary{
			Name:   name,
			Kind:   p.Kind,
			Seed:   p.ResolveSeed(),
			Width:  p.Width,
			Height: p.Height,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return c.JSON(http.StatusOK, summaries)
}

type tableResponse struct {
	Seed   uint32           `json:"seed"`
	Values *permtable.Table `json:"values"`
}

// GetTable serves the permutation table for the :seed parameter, which is
// either a decimal seed value or a name to derive one from.
func (s *Server) GetTable(c echo.Context) error {
	param := c.Param("seed")
	sv64, err := strconv.ParseUint(param, 10, 32)
	sv := uint32(sv64)
	if err != nil {
		sv = seed.Derive(param)
	}
	return c.JSON(http.StatusOK, tableResponse{Seed: sv, Values: s.tableFor(sv)})
}

func (s *Server) GetMap(c echo.Context) error {
	src, p, err := s.samplerFor(c.Param("profile"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	grid, err := p.Builder(src).Build(c.Request().Context())
	if err != nil {
		return err
	}
	return s.writePNG(c, grid, p.Palette)
}

// GetTile serves one quadtree tile of a profile's field. Zoom level z splits
// the profile window into 2^z spans per axis; tile (0,0) starts at the
// window's low corner.
func (s *Server) GetTile(c echo.Context) error {
	src, p, err := s.samplerFor(c.Param("profile"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	zoom, err := tileCoord(c, "zoom", maxZoom)
	if err != nil {
		return err
	}
	n := 1 << zoom
	tx, err := tileCoord(c, "x", n-1)
	if err != nil {
		return err
	}
	ty, err := tileCoord(c, "y", n-1)
	if err != nil {
		return err
	}

	xSpan := (p.XHi - p.XLo) / float64(n)
	ySpan := (p.YHi - p.YLo) / float64(n)
	xLo := p.XLo + float64(tx)*xSpan
	yLo := p.YLo + float64(ty)*ySpan

	b := mapbuild.NewBuilder(src).
		SetSize(tileSize, tileSize).
		SetBounds(xLo, xLo+xSpan, yLo, yLo+ySpan).
		SetZ(p.Z)
	if p.Workers > 0 {
		b.SetWorkers(p.Workers)
	}
	grid, err := b.Build(c.Request().Context())
	if err != nil {
		return err
	}
	return s.writePNG(c, grid, p.Palette)
}

func (s *Server) GetPipeline(c echo.Context) error {
	src, _, err := s.samplerFor(c.Param("profile"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	svg, err := pipeviz.RenderSVG(c.Request().Context(), src)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", svg)
}

func (s *Server) GetGrids(c echo.Context) error {
	infos, err := s.store.ListGrids(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, infos)
}

func (s *Server) GetGrid(c echo.Context) error {
	grid, err := s.store.LoadGrid(c.Request().Context(), c.Param("name"))
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}
	pal := c.QueryParam("palette")
	if pal == "" {
		pal = "terrain"
	}
	return s.writePNG(c, grid, pal)
}

func (s *Server) writePNG(c echo.Context, grid *mapbuild.Grid, palette string) error {
	pal, err := render.PaletteByName(palette)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var buf bytes.Buffer
	if err := render.NewRenderer(pal).EncodePNG(grid, &buf); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) samplerFor(name string) (noise.Sampler, profile.Profile, error) {
	p, err := s.cfg.Profile(name)
	if err != nil {
		return nil, profile.Profile{}, err
	}
	if cached, ok := s.samplers.Load(name); ok {
		return cached.(noise.Sampler), p, nil
	}
	src, err := p.Sampler()
	if err != nil {
		return nil, profile.Profile{}, err
	}
	actual, _ := s.samplers.LoadOrStore(name, src)
	return actual.(noise.Sampler), p, nil
}

func (s *Server) tableFor(sv uint32) *permtable.Table {
	if cached, ok := s.tables.Load(sv); ok {
		return cached.(*permtable.Table)
	}
	t := permtable.New(sv)
	actual, _ := s.tables.LoadOrStore(sv, &t)
	return actual.(*permtable.Table)
}

func tileCoord(c echo.Context, name string, max int) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 0 || v > max {
		return 0, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("bad %s %q: want 0..%d", name, c.Param(name), max))
	}
	return v, nil
}

func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		log.Debug().
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
		return err
	}
}
