package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "projektrack-backend/internal/adapter/http"
	appmw "projektrack-backend/internal/adapter/middleware"
	"projektrack-backend/internal/adapter/repository/mysql"
	"projektrack-backend/internal/config"
	"projektrack-backend/internal/domain/agency"
	"projektrack-backend/internal/domain/constituency"
	"projektrack-backend/internal/domain/draft"
	"projektrack-backend/internal/domain/notice"
	"projektrack-backend/internal/domain/project"
	"projektrack-backend/internal/domain/sequence"
	"projektrack-backend/internal/infrastructure/cache"
	"projektrack-backend/internal/infrastructure/db"
	budgetuc "projektrack-backend/internal/usecase/budget"
	draftuc "projektrack-backend/internal/usecase/draft"
	noticeuc "projektrack-backend/internal/usecase/notice"
	"projektrack-backend/internal/usecase/numbering"
	"projektrack-backend/internal/usecase/promote"
	"projektrack-backend/internal/usecase/reconcile"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&constituency.Constituency{},
		&constituency.BudgetEntry{},
		&agency.Agency{},
		&draft.Draft{},
		&project.Project{},
		&notice.Notice{},
		&notice.Entry{},
		&sequence.Sequence{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// repositories and unit of work
	constituencyRepo := mysql.NewConstituencyRepository(gdb)
	draftRepo := mysql.NewDraftRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	// usecases
	budgetUC := budgetuc.NewUsecase(constituencyRepo, draftRepo)
	numberingUC := numbering.NewUsecase(guow)
	draftUC := draftuc.NewUsecase(draftRepo, budgetUC)
	noticeUC := noticeuc.NewUsecase(guow, numberingUC)
	reconcileUC := reconcile.NewUsecase(guow)
	promoteUC := promote.NewUsecase(guow, numberingUC)

	// handlers
	h := httpadp.NewHandler()
	draftH := httpadp.NewDraftHandler(draftUC, budgetUC)
	budgetH := httpadp.NewBudgetHandler(budgetUC)
	noticeH := httpadp.NewNoticeHandler(noticeUC, reconcileUC, budgetUC)
	promoteH := httpadp.NewPromoteHandler(promoteUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idem := appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	e.POST("/drafts", draftH.CreateDraft, idem)
	e.GET("/drafts/:draft_id", draftH.GetDraft)
	e.POST("/drafts/:draft_id/promote", promoteH.Promote, idem)

	e.GET("/constituencies/:constituency_id/budget/:year", budgetH.GetSummary)
	e.GET("/budget/summary", budgetH.GetAggregate)

	e.POST("/notices", noticeH.CreateNotice, idem)
	e.GET("/notices/:notice_id", noticeH.GetNotice)
	e.POST("/notices/:notice_id/first-approval", noticeH.FirstApprove, idem)
	e.POST("/notices/:notice_id/second-approval", noticeH.SecondApprove, idem)
	e.POST("/notices/:notice_id/reject", noticeH.RejectNotice, idem)
	e.POST("/notices/:notice_id/reconcile", noticeH.Reconcile, idem)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
