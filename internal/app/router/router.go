package router

import (
	"net/http"

	brandhandler "research_backend/internal/feature/brand/transport/handler"
	companyhandler "research_backend/internal/feature/company/transport/handler"
	newshandler "research_backend/internal/feature/news/transport/handler"
	researchhandler "research_backend/internal/feature/research/transport/handler"
	"research_backend/internal/platform/http/handler"
	jwtmw "research_backend/internal/platform/jwt"
	"research_backend/internal/platform/metrics"

	"github.com/gin-gonic/gin"
)

// Handlers はルータに登録するハンドラー群です。
// Research / Brand は外部サービスの設定がない場合 nil になり、503を返します。
type Handlers struct {
	Company   *companyhandler.CompanyHandler
	News      *newshandler.NewsHandler
	Research  *researchhandler.ResearchHandler
	Brand     *brandhandler.BrandHandler
	Readiness *handler.ReadinessHandler
}

func NewRouter(h Handlers, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), metrics.Middleware())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	if h.Readiness != nil {
		r.GET("/readyz", h.Readiness.Ready)
	}
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// 認証必須のルート
	// → リクエストヘッダーに外部認証サービスが発行した JWT が必要になる
	v1 := r.Group("/v1")
	v1.Use(jwtmw.AuthRequired(jwtSecret))
	{
		v1.GET("/companies", h.Company.List)
		v1.GET("/companies/resolve", h.Company.Resolve)
		v1.GET("/news", h.News.GetNews)

		if h.Research != nil {
			v1.POST("/research", h.Research.Generate)
			v1.GET("/research/latest", h.Research.Latest)
		} else {
			v1.POST("/research", unavailable("research"))
			v1.GET("/research/latest", unavailable("research"))
		}

		if h.Brand != nil {
			v1.POST("/brands/detect", h.Brand.Detect)
		} else {
			v1.POST("/brands/detect", unavailable("brand detection"))
		}
	}

	return r
}

func unavailable(feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": feature + " is not configured"})
	}
}
