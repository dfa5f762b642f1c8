// Package api exposes read-only pool and pricing queries over HTTP.
package api

import (
	"net/http"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nearswap/nearswap/x/clp/keeper"
	"github.com/nearswap/nearswap/x/clp/types"
)

// Server serves pool state, price quotes and Prometheus metrics.
type Server struct {
	keeper *keeper.Keeper
	log    log.Logger
	engine *gin.Engine
}

// NewServer builds a server around the given keeper.
func NewServer(k *keeper.Keeper, logger log.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		keeper: k,
		log:    logger.With("component", "api"),
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.engine.Group("/v1")
	v1.GET("/pools", s.listPools)
	v1.GET("/pools/:token", s.poolInfo)
	v1.GET("/pools/:token/shares/:account", s.shares)
	v1.GET("/price/near-to-token/:token", s.priceNearToToken)
	v1.GET("/price/token-to-near/:token", s.priceTokenToNear)
	v1.GET("/price/token-to-token", s.priceTokenToToken)
}

// Router returns the underlying HTTP handler.
func (s *Server) Router() http.Handler {
	return s.engine
}

// Run serves requests on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("serving api", "addr", addr)
	return s.engine.Run(addr)
}

func (s *Server) listPools(c *gin.Context) {
	tokens, err := s.keeper.ListPools()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pools": tokens})
}

func (s *Server) poolInfo(c *gin.Context) {
	info, err := s.keeper.PoolInfo(c.Param("token"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if info == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pool not found"})
		return
	}
	c.JSON(http.StatusOK, info)
}

func (s *Server) shares(c *gin.Context) {
	shares, err := s.keeper.SharesBalanceOf(c.Param("token"), c.Param("account"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shares": shares})
}

func (s *Server) priceNearToToken(c *gin.Context) {
	amount, exactIn, ok := s.quoteArgs(c)
	if !ok {
		return
	}
	token := c.Param("token")
	var quote math.Int
	var err error
	if exactIn {
		quote, err = s.keeper.PriceNearToTokenIn(token, amount)
	} else {
		quote, err = s.keeper.PriceNearToTokenOut(token, amount)
	}
	s.quoteReply(c, quote, err)
}

func (s *Server) priceTokenToNear(c *gin.Context) {
	amount, exactIn, ok := s.quoteArgs(c)
	if !ok {
		return
	}
	token := c.Param("token")
	var quote math.Int
	var err error
	if exactIn {
		quote, err = s.keeper.PriceTokenToNearIn(token, amount)
	} else {
		quote, err = s.keeper.PriceTokenToNearOut(token, amount)
	}
	s.quoteReply(c, quote, err)
}

func (s *Server) priceTokenToToken(c *gin.Context) {
	amount, exactIn, ok := s.quoteArgs(c)
	if !ok {
		return
	}
	from, to := c.Query("from"), c.Query("to")
	var quote math.Int
	var err error
	if exactIn {
		quote, err = s.keeper.PriceTokenToTokenIn(from, amount, to)
	} else {
		quote, err = s.keeper.PriceTokenToTokenOut(from, to, amount)
	}
	s.quoteReply(c, quote, err)
}

// quoteArgs parses the amount and side query parameters. Side defaults
// to "in" (exact input).
func (s *Server) quoteArgs(c *gin.Context) (math.Int, bool, bool) {
	amount, ok := math.NewIntFromString(c.Query("amount"))
	if !ok || !amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a positive integer"})
		return math.Int{}, false, false
	}
	switch c.DefaultQuery("side", "in") {
	case "in":
		return amount, true, true
	case "out":
		return amount, false, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "side must be in or out"})
		return math.Int{}, false, false
	}
}

func (s *Server) quoteReply(c *gin.Context, quote math.Int, err error) {
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"amount": quote})
}

// fail maps module errors onto HTTP statuses.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case types.ErrPoolNotFound.Is(err):
		status = http.StatusNotFound
	case types.ErrZeroAmount.Is(err), types.ErrSameToken.Is(err),
		types.ErrPoolDepleted.Is(err), types.ErrInvalidAccount.Is(err):
		status = http.StatusBadRequest
	default:
		s.log.Error("request failed", "path", c.FullPath(), "err", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
