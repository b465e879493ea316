package web

import (
	"context"

	"github.com/oarkflow/frame"
	"github.com/oarkflow/frame/middlewares/server/cors"
	"github.com/oarkflow/frame/middlewares/server/monitor"
	"github.com/oarkflow/frame/pkg/common/utils"
	"github.com/oarkflow/frame/pkg/protocol/consts"
	"github.com/oarkflow/frame/pkg/route"
	"github.com/oarkflow/frame/server"
	"github.com/oarkflow/log"

	"github.com/oarkflow/stemmer"
	"github.com/oarkflow/stemmer/tokenizer"
)

type StemController struct{}

func NewStemController() *StemController {
	return &StemController{}
}

var controller = NewStemController()

func engine(ctx *frame.Context) (*stemmer.Engine, bool) {
	eng, err := stemmer.GetEngine(ctx.Param("type"))
	if err != nil {
		Failed(ctx, consts.StatusNotFound, err.Error(), nil)
		return nil, false
	}
	return eng, true
}

func (f *StemController) Stem(_ context.Context, ctx *frame.Context) {
	var query StemQuery
	if err := ctx.Bind(&query); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if query.Query == "" {
		Failed(ctx, consts.StatusBadRequest, "Word not provided", nil)
		return
	}
	eng, ok := engine(ctx)
	if !ok {
		return
	}
	stem, err := eng.StemLanguage(query.Query, tokenizer.Language(query.Language))
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, utils.H{"word": query.Query, "stem": stem})
}

func (f *StemController) StemBatch(_ context.Context, ctx *frame.Context) {
	var req BatchRequest
	if err := ctx.Bind(&req); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	eng, ok := engine(ctx)
	if !ok {
		return
	}
	stems, errs := eng.StemBatch(req.Words, tokenizer.Language(req.Language))
	if len(errs) > 0 {
		Failed(ctx, consts.StatusBadRequest, errs[0].Error(), utils.H{"errors": len(errs)})
		return
	}
	Success(ctx, consts.StatusOK, utils.H{"words": req.Words, "stems": stems})
}

func (f *StemController) Candidates(_ context.Context, ctx *frame.Context) {
	var query StemQuery
	if err := ctx.Bind(&query); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	eng, ok := engine(ctx)
	if !ok {
		return
	}
	Success(ctx, consts.StatusOK, utils.H{"word": query.Query, "candidates": eng.Candidates(query.Query)})
}

func (f *StemController) Analyze(_ context.Context, ctx *frame.Context) {
	var req AnalyzeRequest
	if err := ctx.Bind(&req); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	eng, ok := engine(ctx)
	if !ok {
		return
	}
	tokens, err := eng.Analyze(req.Text, tokenizer.Language(req.Language))
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, utils.H{"tokens": tokens})
}

func (f *StemController) Metadata(_ context.Context, ctx *frame.Context) {
	eng, ok := engine(ctx)
	if !ok {
		return
	}
	Success(ctx, consts.StatusOK, eng.Metadata())
}

func (f *StemController) ClearCache(_ context.Context, ctx *frame.Context) {
	eng, ok := engine(ctx)
	if !ok {
		return
	}
	eng.ClearCache()
	Success(ctx, consts.StatusOK, nil, "Cache cleared...")
}

func (f *StemController) WarmCache(_ context.Context, ctx *frame.Context) {
	var req WarmRequest
	if err := ctx.Bind(&req); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	eng, ok := engine(ctx)
	if !ok {
		return
	}
	if err := eng.Warm(req.Words); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, utils.H{"warmed": len(req.Words)}, "Cache warmed...")
}

func (f *StemController) SampleCache(_ context.Context, ctx *frame.Context) {
	var query SampleQuery
	if err := ctx.Bind(&query); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if query.Size <= 0 {
		query.Size = 10
	}
	eng, ok := engine(ctx)
	if !ok {
		return
	}
	sample, err := eng.Sample(query.Size)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, sample)
}

func (f *StemController) EngineTypes(_ context.Context, ctx *frame.Context) {
	Success(ctx, consts.StatusOK, stemmer.AvailableEngines())
}

func (f *StemController) Languages(_ context.Context, ctx *frame.Context) {
	Success(ctx, consts.StatusOK, tokenizer.Languages)
}

func (f *StemController) NewEngine(_ context.Context, ctx *frame.Context) {
	var req NewEngine
	if err := ctx.Bind(&req); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if req.Key == "" {
		Failed(ctx, consts.StatusBadRequest, "Key not provided", nil)
		return
	}
	_, err := stemmer.SetEngine(req.Key, &stemmer.Config{
		ProtectedWordsPath:          req.ProtectedWordsPath,
		VowelHarmonyExceptionsPath:  req.VowelHarmonyExceptionsPath,
		LastConsonantExceptionsPath: req.LastConsonantExceptionsPath,
		AverageStemSizeWordsPath:    req.AverageStemSizeWordsPath,
		Keywords:                    req.Keywords,
		EnableStemming:              req.EnableStemming,
		EnableStopWords:             req.EnableStopWords,
		CacheSize:                   req.CacheSize,
		CachePath:                   req.CachePath,
		Compress:                    req.Compress,
	})
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, utils.H{"key": req.Key}, "New stemmer added")
}

func StemRoutes(route route.IRouter) route.IRouter {
	route.POST("/new", controller.NewEngine)
	route.GET("/types", controller.EngineTypes)
	route.GET("/languages", controller.Languages)
	route.GET("/stem/:type", controller.Stem)
	route.POST("/stem/:type", controller.Stem)
	route.POST("/stem/:type/batch", controller.StemBatch)
	route.GET("/candidates/:type", controller.Candidates)
	route.GET("/analyze/:type", controller.Analyze)
	route.POST("/analyze/:type", controller.Analyze)
	route.GET("/metadata/:type", controller.Metadata)
	route.POST("/cache/:type/clear", controller.ClearCache)
	route.POST("/cache/:type/warm", controller.WarmCache)
	route.GET("/cache/:type/sample", controller.SampleCache)
	return route
}

func StartServer(addr string, routePrefix ...string) {
	prefix := "/"
	if len(routePrefix) > 0 {
		prefix = routePrefix[0]
	}
	srv := server.New(
		server.WithDisablePrintRoute(true),
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithStreamBody(true),
	)
	srv.Use(cors.Default())
	srv.GET("/monitor", monitor.New())
	StemRoutes(srv.Group(prefix))
	log.Info().Str("addr", addr).Msg("Starting stemmer server")
	srv.Spin()
}
